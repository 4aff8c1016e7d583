package jsonschema

import "strings"

// evaluateType checks that instance's JSON type matches one of the type
// names the "type" keyword lists. A single string is accepted as a
// one-element list. "integer" matches any number with a zero fractional
// part, and "number" accepts integers too.
func evaluateType(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	names, ok := asStringList(value)
	if !ok || len(names) == 0 {
		return nil
	}

	instanceType := typeName(instance)
	for _, want := range names {
		if want == "number" && instanceType == "integer" {
			return nil
		}
		if instanceType == want {
			return nil
		}
	}

	return []*ValidationError{ctx.newError("type_mismatch", "Value is {received} but should be {expected}", map[string]any{
		"expected": strings.Join(names, ", "),
		"received": instanceType,
	})}
}

// asStringList normalizes the "type" keyword's value, which may be a single
// string or an array of strings.
func asStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []any:
		names := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			names = append(names, s)
		}
		return names, true
	default:
		return nil, false
	}
}
