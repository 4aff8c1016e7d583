package jsonschema

// evaluateMaxItems checks that an array instance has at most maxItems
// elements. Non-array instances always pass.
func evaluateMaxItems(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	max, ok := asNumber(value)
	if !ok {
		return nil
	}
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	if int64(len(arr)) > max.Num().Int64() {
		return []*ValidationError{ctx.newError("items_too_long", "Value should have at most {maximum} items", map[string]any{
			"maximum": FormatNumber(max),
			"count":   len(arr),
		})}
	}
	return nil
}
