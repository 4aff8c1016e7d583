package jsonschema

import "errors"

// === Value Conversion Errors ===
var (
	// ErrInvalidNumberLiteral is returned when a JSON number cannot be
	// parsed into an exact rational value.
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
)

// === Reference Resolution Errors ===
var (
	// ErrMalformedRefURI is returned at construction time when a $ref value
	// cannot be parsed as a URI reference at all.
	ErrMalformedRefURI = errors.New("malformed $ref uri")

	// ErrReferenceNotFound is returned when a $ref resolves to no indexed
	// subschema within the local document.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrRemoteReferenceUnsupported is returned when a $ref names a scheme
	// and authority this engine has no local schema indexed for; network
	// retrieval of remote schemas is out of scope.
	ErrRemoteReferenceUnsupported = errors.New("remote reference unsupported")
)

// === Unsupported Feature Errors ===
var (
	// ErrUnevaluatedKeywordUnsupported is surfaced as a ValidationError when
	// a schema uses unevaluatedProperties or unevaluatedItems.
	ErrUnevaluatedKeywordUnsupported = errors.New("unevaluated-tracking keyword unsupported")
)
