package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConvenienceWrapper(t *testing.T) {
	schema := ObjectOf("type", "string")
	assert.True(t, Validate("x", schema).Valid)
	assert.False(t, Validate(num(t, "1"), schema).Valid)
}

func TestCustomValidateConvenienceWrapper(t *testing.T) {
	schema := ObjectOf("type", "object", "properties", ObjectOf("a", ObjectOf("type", "string")))
	assert.True(t, CustomValidate(ObjectOf("a", nil), schema).Valid)
}

func TestValidateReportsMalformedRefAsError(t *testing.T) {
	schema := ObjectOf("$ref", "not a valid <uri>")
	result := Validate("x", schema)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
}

func TestPointerEscapesTildeAndSlash(t *testing.T) {
	loc := &location{}
	loc.push("a/b")
	loc.push("c~d")
	assert.Equal(t, "/a~1b/c~0d", loc.pointer())
}

func TestPointerEmptyWhenNoSegments(t *testing.T) {
	loc := &location{}
	assert.Equal(t, "", loc.pointer())
}
