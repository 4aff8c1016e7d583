package jsonschema

// evaluateMaximum checks that a numeric instance is less than or equal to
// "maximum". Non-numeric instances always pass.
func evaluateMaximum(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	max, ok := asNumber(value)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(max.Rat) > 0 {
		return []*ValidationError{ctx.newError("value_above_maximum", "{value} should be at most {maximum}", map[string]any{
			"value":   FormatNumber(num),
			"maximum": FormatNumber(max),
		})}
	}
	return nil
}
