package jsonschema

// evaluateUnsupported reports unevaluatedProperties/unevaluatedItems as a
// single unsupported-feature violation rather than silently ignoring them
// or attempting partial evaluation-tracking semantics neither this engine
// nor its dispatch table models.
func evaluateUnsupported(ctx *Context, _ any, _ any, _ *Object) []*ValidationError {
	return []*ValidationError{ctx.newError("unevaluated_keyword_unsupported", ErrUnevaluatedKeywordUnsupported.Error(), nil)}
}
