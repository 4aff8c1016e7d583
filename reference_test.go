package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceIndexResolvesByID(t *testing.T) {
	def := ObjectOf("$id", "https://example.com/defs/x", "type", "integer")
	root := ObjectOf("$id", "https://example.com/root", "$defs", ObjectOf("x", def))
	idx := buildReferenceIndex(root)

	resolved, err := idx.resolve("https://example.com/defs/x")
	require.NoError(t, err)
	assert.Same(t, def, resolved)
}

func TestReferenceIndexResolvesAnchor(t *testing.T) {
	def := ObjectOf("$anchor", "positiveInteger", "type", "integer")
	root := ObjectOf("$defs", ObjectOf("x", def))
	idx := buildReferenceIndex(root)

	resolved, err := idx.resolve("#positiveInteger")
	require.NoError(t, err)
	assert.Same(t, def, resolved)
}

func TestReferenceIndexResolvesJSONPointer(t *testing.T) {
	def := ObjectOf("type", "integer")
	root := ObjectOf("$defs", ObjectOf("x", def))
	idx := buildReferenceIndex(root)

	resolved, err := idx.resolve("#/$defs/x")
	require.NoError(t, err)
	assert.Same(t, def, resolved)
}

func TestReferenceIndexReportsNotFound(t *testing.T) {
	idx := buildReferenceIndex(ObjectOf())
	_, err := idx.resolve("#/$defs/missing")
	assert.True(t, errors.Is(err, ErrReferenceNotFound))
}

func TestReferenceIndexReportsRemoteUnsupported(t *testing.T) {
	idx := buildReferenceIndex(ObjectOf())
	_, err := idx.resolve("https://other.example.com/schema.json")
	assert.True(t, errors.Is(err, ErrRemoteReferenceUnsupported))
}

func TestNewRejectsMalformedRefSyntax(t *testing.T) {
	schema := ObjectOf("$ref", "not a valid <uri>")
	_, err := New(schema)
	assert.True(t, errors.Is(err, ErrMalformedRefURI))
}

func TestRefEvaluationSurfacesNotFoundAsValidationError(t *testing.T) {
	schema := ObjectOf("$ref", "#/$defs/missing")
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate(num(t, "1"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "reference_not_found", result.Errors[0].Code)
}
