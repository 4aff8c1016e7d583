package jsonschema

// evaluateConst checks that instance equals the exact value the "const"
// keyword names.
func evaluateConst(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	if value == nil {
		if instance != nil {
			return []*ValidationError{ctx.newError("const_mismatch_null", "Value does not match constant null value", nil)}
		}
		return nil
	}
	if !deepEqual(instance, value) {
		return []*ValidationError{ctx.newError("const_mismatch", "Value does not match the constant value", nil)}
	}
	return nil
}
