package jsonschema

import "unicode/utf8"

// evaluateMinLength checks that a string instance has at least minLength
// Unicode code points. Non-string instances always pass.
func evaluateMinLength(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	min, ok := asNumber(value)
	if !ok {
		return nil
	}
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	length := utf8.RuneCountInString(str)
	if int64(length) < min.Num().Int64() {
		return []*ValidationError{ctx.newError("string_too_short", "Value should be at least {minimum} characters", map[string]any{
			"minimum": FormatNumber(min),
			"length":  length,
		})}
	}
	return nil
}
