package jsonschema

import "strconv"

// evaluateContains requires at least minContains (default 1) and at most
// maxContains (default unbounded) array elements to validate against the
// "contains" subschema. Per-element failures are not reported, only the
// aggregate count mismatch, since any single element may legitimately fail.
func evaluateContains(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}

	matched := 0
	for i, item := range arr {
		ctx.pushKeyword("contains")
		ctx.pushInstance(i)
		errs := ctx.driver.descend(ctx, item, value)
		ctx.popInstance()
		ctx.popKeyword()
		if len(errs) == 0 {
			matched++
		}
	}

	minContains := 1
	if raw, has := schema.Get("minContains"); has {
		if n, ok := asNumber(raw); ok && n.IsInteger() {
			minContains = int(n.Num().Int64())
		}
	}

	if matched < minContains {
		return []*ValidationError{ctx.newError("contains_too_few", "Array should contain at least {min} matching items, found {count}", map[string]any{
			"min":   strconv.Itoa(minContains),
			"count": strconv.Itoa(matched),
		})}
	}

	if raw, has := schema.Get("maxContains"); has {
		if n, ok := asNumber(raw); ok && n.IsInteger() {
			max := int(n.Num().Int64())
			if matched > max {
				return []*ValidationError{ctx.newError("contains_too_many", "Array should contain at most {max} matching items, found {count}", map[string]any{
					"max":   strconv.Itoa(max),
					"count": strconv.Itoa(matched),
				})}
			}
		}
	}

	return nil
}
