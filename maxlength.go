package jsonschema

import "unicode/utf8"

// evaluateMaxLength checks that a string instance has at most maxLength
// Unicode code points. Non-string instances always pass.
func evaluateMaxLength(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	max, ok := asNumber(value)
	if !ok {
		return nil
	}
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	length := utf8.RuneCountInString(str)
	if int64(length) > max.Num().Int64() {
		return []*ValidationError{ctx.newError("string_too_long", "Value should be at most {maximum} characters", map[string]any{
			"maximum": FormatNumber(max),
			"length":  length,
		})}
	}
	return nil
}
