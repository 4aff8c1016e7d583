package jsonschema

// evaluateEnum checks that instance equals one of the values listed by the
// "enum" keyword. Numbers compare by mathematical value (1 equals 1.0).
func evaluateEnum(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	values, ok := value.([]any)
	if !ok || len(values) == 0 {
		return nil
	}
	for _, candidate := range values {
		if deepEqual(instance, candidate) {
			return nil
		}
	}
	return []*ValidationError{ctx.newError("value_not_in_enum", "Value should match one of the values specified by the enum", nil)}
}
