package jsonschema

// evaluateExclusiveMaximumBool implements Draft 4's exclusiveMaximum: a
// boolean companion to the sibling "maximum" keyword. true makes the
// maximum comparison strict; it has no effect without a sibling "maximum".
func evaluateExclusiveMaximumBool(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	exclusive, ok := value.(bool)
	if !ok || !exclusive {
		return nil
	}
	maxRaw, has := schema.Get("maximum")
	if !has {
		return nil
	}
	max, ok := asNumber(maxRaw)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(max.Rat) >= 0 {
		return []*ValidationError{ctx.newError("exclusive_maximum_mismatch", "{value} should be less than {maximum}", map[string]any{
			"maximum": FormatNumber(max),
			"value":   FormatNumber(num),
		})}
	}
	return nil
}

// evaluateExclusiveMaximumNumber implements Draft 6+'s exclusiveMaximum: a
// numeric value the instance must be strictly less than, independent of any
// sibling "maximum".
func evaluateExclusiveMaximumNumber(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	max, ok := asNumber(value)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(max.Rat) >= 0 {
		return []*ValidationError{ctx.newError("exclusive_maximum_mismatch", "{value} should be less than {maximum}", map[string]any{
			"maximum": FormatNumber(max),
			"value":   FormatNumber(num),
		})}
	}
	return nil
}
