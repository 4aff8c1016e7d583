package jsonschema

// evaluateConditional implements "if"/"then"/"else": when instance
// validates against "if", "then" (if present) must also validate it;
// otherwise "else" (if present) must validate it. Absent "then"/"else"
// branches impose no further constraint. "if" with no sibling "then" or
// "else" has no effect beyond probing validity, per the keyword's own
// definition.
func evaluateConditional(ctx *Context, value any, instance any, schema *Object) []*ValidationError {
	ctx.pushKeyword("if")
	ifErrs := ctx.driver.descend(ctx, instance, value)
	ctx.popKeyword()

	if len(ifErrs) == 0 {
		thenSchema, has := schema.Get("then")
		if !has {
			return nil
		}
		ctx.pushKeyword("then")
		errs := ctx.driver.descend(ctx, instance, thenSchema)
		ctx.popKeyword()
		return errs
	}

	elseSchema, has := schema.Get("else")
	if !has {
		return nil
	}
	ctx.pushKeyword("else")
	errs := ctx.driver.descend(ctx, instance, elseSchema)
	ctx.popKeyword()
	return errs
}
