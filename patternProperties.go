package jsonschema

// evaluatePatternProperties descends into each instance key matching any
// "patternProperties" pattern, against that pattern's subschema, returning
// the union of the resulting errors. A key matching multiple patterns is
// checked against every one of them.
func evaluatePatternProperties(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	patterns, ok := value.(*Object)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	for _, pattern := range patterns.Keys() {
		patternSchema, _ := patterns.Get(pattern)
		re, err := compiledPattern(pattern)
		if err != nil {
			errs = append(errs, ctx.newError("invalid_pattern", "Invalid regular expression pattern {pattern}", map[string]any{
				"pattern": pattern,
			}))
			continue
		}
		for _, name := range obj.Keys() {
			if !re.MatchString(name) {
				continue
			}
			propValue, _ := obj.Get(name)
			ctx.pushKeyword(pattern)
			ctx.pushInstance(name)
			errs = append(errs, ctx.driver.descend(ctx, propValue, patternSchema)...)
			ctx.popInstance()
			ctx.popKeyword()
		}
	}
	return errs
}
