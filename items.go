package jsonschema

// evaluateItems implements both spellings of positional/uniform array
// validation: Draft 4-2019-09 express a tuple schema as an array value for
// "items" (paired off with additionalItems for the remainder); 2020-12
// splits that into "prefixItems" (the tuple) plus "items" as a single
// schema applied to whatever follows. Both forms share this one
// implementation: the tuple-array spelling pairs positionally, the single-
// schema spelling applies to every element past any sibling prefixItems.
func evaluateItems(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}

	if tuple, ok := value.([]any); ok {
		return evaluatePositional(ctx, tuple, arr, 0)
	}

	startIndex := 0
	if prefixRaw, has := schema.Get("prefixItems"); has {
		if prefix, ok := prefixRaw.([]any); ok {
			startIndex = len(prefix)
		}
	}

	var errs []*ValidationError
	for i := startIndex; i < len(arr); i++ {
		ctx.pushKeyword(i)
		ctx.pushInstance(i)
		errs = append(errs, ctx.driver.descend(ctx, arr[i], value)...)
		ctx.popInstance()
		ctx.popKeyword()
	}
	return errs
}

// evaluatePositional pairs each element of arr from offset onward with the
// subschema at the same position in tuple, stopping once either is
// exhausted.
func evaluatePositional(ctx *Context, tuple []any, arr []any, offset int) []*ValidationError {
	var errs []*ValidationError
	for i := 0; i+offset < len(arr) && i < len(tuple); i++ {
		idx := i + offset
		ctx.pushKeyword(i)
		ctx.pushInstance(idx)
		errs = append(errs, ctx.driver.descend(ctx, arr[idx], tuple[i])...)
		ctx.popInstance()
		ctx.popKeyword()
	}
	return errs
}
