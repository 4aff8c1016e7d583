package jsonschema

import "github.com/kaptinlin/go-i18n"

// ValidationError is one violation found while checking an instance against
// a schema. Errors are value types: once constructed they are never mutated.
type ValidationError struct {
	Message          string         `json:"message"`
	InstanceLocation string         `json:"instanceLocation"`
	KeywordLocation  string         `json:"keywordLocation"`
	Code             string         `json:"code"`
	Params           map[string]any `json:"params,omitempty"`
}

// newValidationError builds a ValidationError from the Context's current
// location stacks, substituting params into message.
func newValidationError(ctx *Context, code, message string, params map[string]any) *ValidationError {
	return &ValidationError{
		Message:          replace(message, params),
		InstanceLocation: ctx.instanceLoc.pointer(),
		KeywordLocation:  ctx.keywordLoc.pointer(),
		Code:             code,
		Params:           params,
	}
}

// Error implements the error interface, returning the English message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Localize renders the error through localizer, falling back to the English
// message when no localizer or code is available.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil || e.Code == "" {
		return e.Message
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

// ValidationResult is the outcome of validating one instance against one
// schema: valid iff Errors is empty.
type ValidationResult struct {
	Valid  bool               `json:"valid"`
	Errors []*ValidationError `json:"errors,omitempty"`
}
