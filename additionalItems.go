package jsonschema

// evaluateAdditionalItems governs array elements past the end of a
// tuple-array-valued "items" keyword (Draft 4-2019-09's positional-tuple
// spelling); it does nothing when "items" is absent, or when "items" is a
// single schema, since evaluateItems then already covers every element.
func evaluateAdditionalItems(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	itemsRaw, has := schema.Get("items")
	if !has {
		return nil
	}
	tuple, ok := itemsRaw.([]any)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	for i := len(tuple); i < len(arr); i++ {
		ctx.pushKeyword(i)
		ctx.pushInstance(i)
		errs = append(errs, ctx.driver.descend(ctx, arr[i], value)...)
		ctx.popInstance()
		ctx.popKeyword()
	}
	return errs
}
