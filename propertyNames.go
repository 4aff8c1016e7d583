package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// evaluatePropertyNames checks every instance object key, treated as a
// string instance, against the "propertyNames" subschema, aggregating
// failing keys into one sorted error the way additionalProperties does.
func evaluatePropertyNames(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var invalid []string
	for _, name := range obj.Keys() {
		if errs := ctx.driver.descend(ctx, name, value); len(errs) > 0 {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Strings(invalid)
	quoted := make([]string, len(invalid))
	for i, name := range invalid {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	if len(quoted) == 1 {
		return []*ValidationError{ctx.newError("property_name_mismatch", "Property name {property} does not match the schema", map[string]any{
			"property": quoted[0],
		})}
	}
	return []*ValidationError{ctx.newError("property_names_mismatch", "Property names {properties} do not match the schema", map[string]any{
		"properties": strings.Join(quoted, ", "),
	})}
}
