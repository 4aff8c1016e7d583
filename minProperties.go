package jsonschema

// evaluateMinProperties checks that an object instance has at least
// minProperties keys. Non-object instances always pass.
func evaluateMinProperties(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	min, ok := asNumber(value)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}
	if int64(obj.Len()) < min.Num().Int64() {
		return []*ValidationError{ctx.newError("too_few_properties", "Value should have at least {minimum} properties", map[string]any{
			"minimum": FormatNumber(min),
		})}
	}
	return nil
}
