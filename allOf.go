package jsonschema

import (
	"strconv"
	"strings"
)

// evaluateAllOf requires instance to validate against every subschema in
// "allOf", collecting the union of every branch's sub-errors plus one
// summary error naming which branch indexes failed.
func evaluateAllOf(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	branches, ok := value.([]any)
	if !ok || len(branches) == 0 {
		return nil
	}

	var errs []*ValidationError
	var failedIndexes []string

	for i, branch := range branches {
		ctx.pushKeyword(i)
		branchErrs := ctx.driver.descend(ctx, instance, branch)
		ctx.popKeyword()

		if len(branchErrs) > 0 {
			errs = append(errs, branchErrs...)
			failedIndexes = append(failedIndexes, strconv.Itoa(i))
		}
	}

	if len(failedIndexes) == 0 {
		return nil
	}
	return append(errs, ctx.newError("all_of_mismatch", "Value does not match the allOf schema at index {indexes}", map[string]any{
		"indexes": strings.Join(failedIndexes, ", "),
	}))
}
