package jsonschema

// evaluateNot requires instance to fail validation against the "not"
// subschema.
func evaluateNot(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	ctx.pushKeyword("not")
	errs := ctx.driver.descend(ctx, instance, value)
	ctx.popKeyword()

	if len(errs) == 0 {
		return []*ValidationError{ctx.newError("not_mismatch", "Value should not match the not schema", nil)}
	}
	return nil
}
