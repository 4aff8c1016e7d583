package jsonschema

// evaluateExclusiveMinimumBool implements Draft 4's exclusiveMinimum: a
// boolean companion to the sibling "minimum" keyword. true makes the
// minimum comparison strict; it has no effect without a sibling "minimum".
func evaluateExclusiveMinimumBool(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	exclusive, ok := value.(bool)
	if !ok || !exclusive {
		return nil
	}
	minRaw, has := schema.Get("minimum")
	if !has {
		return nil
	}
	min, ok := asNumber(minRaw)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(min.Rat) <= 0 {
		return []*ValidationError{ctx.newError("exclusive_minimum_mismatch", "{value} should be greater than {minimum}", map[string]any{
			"minimum": FormatNumber(min),
			"value":   FormatNumber(num),
		})}
	}
	return nil
}

// evaluateExclusiveMinimumNumber implements Draft 6+'s exclusiveMinimum: a
// numeric value the instance must be strictly greater than, independent of
// any sibling "minimum".
func evaluateExclusiveMinimumNumber(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	min, ok := asNumber(value)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if num.Cmp(min.Rat) <= 0 {
		return []*ValidationError{ctx.newError("exclusive_minimum_mismatch", "{value} should be greater than {minimum}", map[string]any{
			"minimum": FormatNumber(min),
			"value":   FormatNumber(num),
		})}
	}
	return nil
}
