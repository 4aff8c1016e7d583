package jsonschema

import (
	"sort"
	"strings"
)

// evaluateDependentSchemas requires that whenever a key named in
// "dependentSchemas" is present in the instance, the whole instance
// validates against the associated subschema.
func evaluateDependentSchemas(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	deps, ok := value.(*Object)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	var failed []string
	for _, key := range deps.Keys() {
		if !obj.Has(key) {
			continue
		}
		subschema, _ := deps.Get(key)
		ctx.pushKeyword(key)
		subErrs := ctx.driver.descend(ctx, instance, subschema)
		ctx.popKeyword()
		if len(subErrs) > 0 {
			errs = append(errs, subErrs...)
			failed = append(failed, key)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	sort.Strings(failed)
	return append(errs, ctx.newError("dependent_schemas_mismatch", "Properties {properties} do not meet the schema requirements dependent on them", map[string]any{
		"properties": strings.Join(failed, ", "),
	}))
}
