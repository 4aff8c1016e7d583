package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// evaluateDependentRequired requires that whenever a key named in
// "dependentRequired" is present in the instance, every property name in
// its associated array is also present.
func evaluateDependentRequired(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	deps, ok := value.(*Object)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	missing := map[string][]string{}
	for _, key := range deps.Keys() {
		if !obj.Has(key) {
			continue
		}
		required, _ := deps.Get(key)
		names, ok := asStringList(required)
		if !ok {
			continue
		}
		for _, name := range names {
			if !obj.Has(name) {
				missing[key] = append(missing[key], name)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	keys := make([]string, 0, len(missing))
	for key := range missing {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("'%s' requires %s", key, strings.Join(missing[key], ", ")))
	}
	return []*ValidationError{ctx.newError("dependent_required_mismatch", "Some required property dependencies are missing: {missing}", map[string]any{
		"missing": strings.Join(parts, "; "),
	})}
}

// evaluateDependencies implements Draft 4-7's combined "dependencies"
// keyword, where each entry is either a dependentRequired-style array of
// property names, or a dependentSchemas-style subschema.
func evaluateDependencies(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	deps, ok := value.(*Object)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	for _, key := range deps.Keys() {
		if !obj.Has(key) {
			continue
		}
		dep, _ := deps.Get(key)
		if names, ok := asStringList(dep); ok {
			var missing []string
			for _, name := range names {
				if !obj.Has(name) {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				errs = append(errs, ctx.newError("dependent_required_mismatch", "'{key}' requires {missing}", map[string]any{
					"key":     key,
					"missing": strings.Join(missing, ", "),
				}))
			}
			continue
		}

		ctx.pushKeyword(key)
		errs = append(errs, ctx.driver.descend(ctx, instance, dep)...)
		ctx.popKeyword()
	}
	return errs
}
