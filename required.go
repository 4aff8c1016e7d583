package jsonschema

import (
	"fmt"
	"strings"
)

// evaluateRequired checks that every property name listed in "required" is
// present on an object instance. Non-object instances always pass.
func evaluateRequired(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	names, ok := asStringList(value)
	if !ok || len(names) == 0 {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var missing []string
	for _, name := range names {
		if !obj.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	quoted := make([]string, len(missing))
	for i, name := range missing {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	if len(missing) == 1 {
		return []*ValidationError{ctx.newError("missing_required_property", "Required property {property} is missing", map[string]any{
			"property": quoted[0],
		})}
	}
	return []*ValidationError{ctx.newError("missing_required_properties", "Required properties {properties} are missing", map[string]any{
		"properties": strings.Join(quoted, ", "),
	})}
}
