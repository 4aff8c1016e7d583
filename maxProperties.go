package jsonschema

// evaluateMaxProperties checks that an object instance has at most
// maxProperties keys. Non-object instances always pass.
func evaluateMaxProperties(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	max, ok := asNumber(value)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}
	if int64(obj.Len()) > max.Num().Int64() {
		return []*ValidationError{ctx.newError("too_many_properties", "Value should have at most {maximum} properties", map[string]any{
			"maximum": FormatNumber(max),
		})}
	}
	return nil
}
