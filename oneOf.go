package jsonschema

import (
	"strconv"
	"strings"
)

// evaluateOneOf requires instance to validate against exactly one
// subschema in "oneOf".
func evaluateOneOf(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	branches, ok := value.([]any)
	if !ok || len(branches) == 0 {
		return nil
	}

	var matched []string
	var errs []*ValidationError
	for i, branch := range branches {
		ctx.pushKeyword(i)
		branchErrs := ctx.driver.descend(ctx, instance, branch)
		ctx.popKeyword()

		if len(branchErrs) == 0 {
			matched = append(matched, strconv.Itoa(i))
		} else {
			errs = append(errs, branchErrs...)
		}
	}

	switch len(matched) {
	case 1:
		return nil
	case 0:
		return append(errs, ctx.newError("one_of_mismatch", "Value does not match any oneOf schema", nil))
	default:
		return []*ValidationError{ctx.newError("one_of_multiple_matches", "Value matches more than one oneOf schema: indexes {indexes}", map[string]any{
			"indexes": strings.Join(matched, ", "),
		})}
	}
}
