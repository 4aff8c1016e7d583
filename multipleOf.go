package jsonschema

import "math/big"

// evaluateMultipleOf checks that instance, divided by the "multipleOf"
// divisor, yields an exact integer. Non-numeric instances always pass.
func evaluateMultipleOf(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	divisor, ok := asNumber(value)
	if !ok {
		return nil
	}
	num, ok := asNumber(instance)
	if !ok {
		return nil
	}
	if divisor.Sign() <= 0 {
		return []*ValidationError{ctx.newError("invalid_multiple_of", "Multiple of {divisor} should be greater than 0", map[string]any{
			"divisor": FormatNumber(divisor),
		})}
	}
	result := new(big.Rat).Quo(num.Rat, divisor.Rat)
	if !result.IsInt() {
		return []*ValidationError{ctx.newError("not_multiple_of", "{value} should be a multiple of {divisor}", map[string]any{
			"divisor": FormatNumber(divisor),
			"value":   FormatNumber(num),
		})}
	}
	return nil
}
