package jsonschema

// evaluateFormat asserts the named format against a string instance using
// the fixed builtinFormats registry. Unrecognized format names are ignored
// rather than rejected: this engine only asserts the formats it actually
// ships a checker for.
func evaluateFormat(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	name, ok := value.(string)
	if !ok {
		return nil
	}
	check, ok := builtinFormats[name]
	if !ok {
		return nil
	}
	if check(instance) {
		return nil
	}
	return []*ValidationError{ctx.newError("format_mismatch", "Value does not match format '{format}'", map[string]any{
		"format": name,
	})}
}
