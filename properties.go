package jsonschema

// evaluateProperties descends into each instance key also named by
// "properties", in schema order, and returns the union of whatever errors
// those descents produce. Keys the instance omits are skipped (required
// enforces presence on its own).
func evaluateProperties(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	props, ok := value.(*Object)
	if !ok {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return nil
	}

	var errs []*ValidationError
	for _, name := range props.Keys() {
		propSchema, _ := props.Get(name)
		propValue, exists := obj.Get(name)
		if !exists {
			continue
		}
		ctx.pushKeyword(name)
		ctx.pushInstance(name)
		errs = append(errs, ctx.driver.descend(ctx, propValue, propSchema)...)
		ctx.popInstance()
		ctx.popKeyword()
	}
	return errs
}

// findAdditionalProperties returns the instance keys additionalProperties
// needs to consider: those not listed under
// "properties" and not matched by any "patternProperties" pattern.
func findAdditionalProperties(instance *Object, schema *Object) []string {
	covered := make(map[string]bool)
	if propsRaw, ok := schema.Get("properties"); ok {
		if props, ok := propsRaw.(*Object); ok {
			for _, k := range props.Keys() {
				covered[k] = true
			}
		}
	}
	var patterns []string
	if ppRaw, ok := schema.Get("patternProperties"); ok {
		if pp, ok := ppRaw.(*Object); ok {
			patterns = pp.Keys()
		}
	}

	var extras []string
	for _, k := range instance.Keys() {
		if covered[k] {
			continue
		}
		matched := false
		for _, pattern := range patterns {
			if re, err := compiledPattern(pattern); err == nil && re.MatchString(k) {
				matched = true
				break
			}
		}
		if !matched {
			extras = append(extras, k)
		}
	}
	return extras
}
