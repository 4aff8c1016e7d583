package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// evaluateAdditionalProperties applies to every instance key not covered by
// "properties" or any "patternProperties" pattern on the enclosing schema.
// A schema value descends into each extra (union of sub-errors); a boolean
// false rejects the instance outright if any extras exist, naming them in
// one sorted, aggregate error.
func evaluateAdditionalProperties(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}
	extras := findAdditionalProperties(obj, schema)
	if len(extras) == 0 {
		return nil
	}

	if allowed, ok := value.(bool); ok {
		if allowed {
			return nil
		}
		sort.Strings(extras)
		quoted := make([]string, len(extras))
		for i, name := range extras {
			quoted[i] = fmt.Sprintf("'%s'", name)
		}
		if len(quoted) == 1 {
			return []*ValidationError{ctx.newError("additional_property_mismatch", "Additional property {property} does not match the schema", map[string]any{
				"property": quoted[0],
			})}
		}
		return []*ValidationError{ctx.newError("additional_properties_mismatch", "Additional properties {properties} do not match the schema", map[string]any{
			"properties": strings.Join(quoted, ", "),
		})}
	}

	var errs []*ValidationError
	for _, name := range extras {
		propValue, _ := obj.Get(name)
		ctx.pushKeyword(name)
		ctx.pushInstance(name)
		errs = append(errs, ctx.driver.descend(ctx, propValue, value)...)
		ctx.popInstance()
		ctx.popKeyword()
	}
	return errs
}
