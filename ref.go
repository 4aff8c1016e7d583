package jsonschema

import "errors"

// evaluateRef resolves "$ref" (and its local-only aliases $recursiveRef and
// $dynamicRef, registered under this same function by the dialect tables
// that carry them) against the validator's reference index and descends
// into the resolved subschema. A reference that fails to resolve is
// reported as a validation error rather than aborting the whole run, so one
// broken $ref doesn't hide every other finding.
func evaluateRef(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	ref, ok := value.(string)
	if !ok {
		return nil
	}

	resolved, err := ctx.driver.refIndex.resolve(ref)
	if err != nil {
		code := "reference_not_found"
		if errors.Is(err, ErrRemoteReferenceUnsupported) {
			code = "remote_reference_unsupported"
		}
		return []*ValidationError{ctx.newError(code, err.Error(), map[string]any{"ref": ref})}
	}

	return ctx.driver.descend(ctx, instance, resolved)
}
