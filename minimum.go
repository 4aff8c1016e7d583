package jsonschema

// evaluateMinimum checks that a numeric instance is greater than or equal to
// "minimum". Non-numeric instances always pass.
func evaluateMinimum(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	min, ok := asNumber(value)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(min.Rat) < 0 {
		return []*ValidationError{ctx.newError("value_below_minimum", "{value} should be at least {minimum}", map[string]any{
			"value":   FormatNumber(num),
			"minimum": FormatNumber(min),
		})}
	}
	return nil
}
