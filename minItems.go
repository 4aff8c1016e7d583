package jsonschema

// evaluateMinItems checks that an array instance has at least minItems
// elements. Non-array instances always pass.
func evaluateMinItems(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	min, ok := asNumber(value)
	if !ok {
		return nil
	}
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	if int64(len(arr)) < min.Num().Int64() {
		return []*ValidationError{ctx.newError("items_too_short", "Value should have at least {minimum} items", map[string]any{
			"minimum": FormatNumber(min),
			"count":   len(arr),
		})}
	}
	return nil
}
