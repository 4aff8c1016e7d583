package jsonschema

// lenientTable wraps draft7Table, replacing a fixed set of keyword
// functions with null-tolerant variants: a document authored against real
// data that sometimes spells "unset" as JSON null rather than omitting the
// key entirely should not be rejected for it.
func lenientTable() *Table {
	return draft7Table().with(map[string]KeywordFunc{
		"properties":            evaluateLenientProperties,
		"type":                  evaluateLenientType,
		"enum":                  evaluateLenientEnum,
		"additionalProperties":  evaluateLenientAdditionalProperties,
		"const":                 evaluateLenientConst,
		"allOf":                 evaluateLenientAllOf,
	})
}

// evaluateLenientType passes unconditionally when the instance is null,
// otherwise behaves exactly like the Draft 7 type keyword.
func evaluateLenientType(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	if instance == nil {
		return nil
	}
	return evaluateType(ctx, value, instance, schema)
}

// evaluateLenientEnum passes unconditionally when the instance is null.
func evaluateLenientEnum(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	if instance == nil {
		return nil
	}
	return evaluateEnum(ctx, value, instance, schema)
}

// evaluateLenientConst treats a const:true boolean as satisfied by any
// boolean instance, true or false.
func evaluateLenientConst(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	if b, ok := value.(bool); ok && b {
		if _, isBool := instance.(bool); isBool {
			return nil
		}
	}
	return evaluateConst(ctx, value, instance, schema)
}

// evaluateLenientProperties skips descent into any instance property whose
// value is null, and passes unconditionally when the whole instance is
// null.
func evaluateLenientProperties(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	if instance == nil {
		return nil
	}
	obj, ok := instance.(*Object)
	if !ok {
		return evaluateProperties(ctx, value, instance, schema)
	}
	filtered := NewObject()
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		if v == nil {
			continue
		}
		filtered.Set(k, v)
	}
	return evaluateProperties(ctx, value, filtered, schema)
}

// evaluateLenientAdditionalProperties passes unconditionally when the
// instance is null.
func evaluateLenientAdditionalProperties(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	if instance == nil {
		return nil
	}
	return evaluateAdditionalProperties(ctx, value, instance, schema)
}

// evaluateLenientAllOf skips any branch whose properties keyword names a
// const:true constraint entirely, rather than evaluating it against the
// (possibly null-bearing) instance.
func evaluateLenientAllOf(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	branches, ok := value.([]any)
	if !ok {
		return nil
	}
	var errs []*ValidationError
	for i, branch := range branches {
		if branchHasConstTrueProperty(branch) {
			continue
		}
		ctx.pushKeyword(i)
		errs = append(errs, ctx.driver.descend(ctx, instance, branch)...)
		ctx.popKeyword()
	}
	return errs
}

func branchHasConstTrueProperty(branch any) bool {
	obj, ok := branch.(*Object)
	if !ok {
		return false
	}
	propsRaw, ok := obj.Get("properties")
	if !ok {
		return false
	}
	props, ok := propsRaw.(*Object)
	if !ok {
		return false
	}
	for _, k := range props.Keys() {
		v, _ := props.Get(k)
		propSchema, ok := v.(*Object)
		if !ok {
			continue
		}
		if c, has := propSchema.Get("const"); has {
			if b, ok := c.(bool); ok && b {
				return true
			}
		}
	}
	return false
}
