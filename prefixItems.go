package jsonschema

// evaluatePrefixItems pairs each array element positionally against the
// matching subschema in "prefixItems" (2020-12's split of the tuple form),
// stopping once either the instance or the prefix list runs out. Elements
// beyond the prefix are left to a sibling "items" keyword.
func evaluatePrefixItems(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	tuple, ok := value.([]any)
	if !ok {
		return nil
	}
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	return evaluatePositional(ctx, tuple, arr, 0)
}
