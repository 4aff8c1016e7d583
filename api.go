package jsonschema

// Validate is a one-shot convenience wrapper: build a Validator for schema
// and immediately validate instance against it. A schema construction
// failure (a malformed $ref URI) is reported as a single ValidationError
// rather than a Go error, since callers of the flat ValidationResult API
// expect exactly one result shape.
func Validate(instance, schema any) *ValidationResult {
	v, err := New(schema)
	if err != nil {
		return &ValidationResult{Valid: false, Errors: []*ValidationError{{Message: err.Error()}}}
	}
	return v.Validate(instance)
}

// CustomValidate is Validate's lenient counterpart: the schema is always
// evaluated through the null-permissive Draft 7 overlay, ignoring any
// $schema keyword it declares.
func CustomValidate(instance, schema any) *ValidationResult {
	v, err := NewCustom(schema)
	if err != nil {
		return &ValidationResult{Valid: false, Errors: []*ValidationError{{Message: err.Error()}}}
	}
	return v.Validate(instance)
}
