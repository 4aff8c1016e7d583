package jsonschema

// evaluateAnyOf requires instance to validate against at least one
// subschema in "anyOf". When none match, every branch's sub-errors are
// reported so the caller can see why each one failed.
func evaluateAnyOf(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	branches, ok := value.([]any)
	if !ok || len(branches) == 0 {
		return nil
	}

	var errs []*ValidationError
	for i, branch := range branches {
		ctx.pushKeyword(i)
		branchErrs := ctx.driver.descend(ctx, instance, branch)
		ctx.popKeyword()

		if len(branchErrs) == 0 {
			return nil
		}
		errs = append(errs, branchErrs...)
	}
	return append(errs, ctx.newError("any_of_mismatch", "Value does not match any anyOf schema", nil))
}
