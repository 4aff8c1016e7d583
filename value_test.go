package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(t *testing.T, literal string) *Number {
	t.Helper()
	n, err := NewNumberFromString(literal)
	require.NoError(t, err)
	return n
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", num(t, "1"))
	obj.Set("a", num(t, "2"))
	obj.Set("b", num(t, "3")) // re-setting an existing key must not move it

	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	v, ok := obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, "3", FormatNumber(v.(*Number)))
}

func TestObjectOfBuildsFromPairs(t *testing.T) {
	obj := ObjectOf("type", "object", "required", []any{"name"})
	assert.Equal(t, []string{"type", "required"}, obj.Keys())
	typ, _ := obj.Get("type")
	assert.Equal(t, "object", typ)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "null", typeName(nil))
	assert.Equal(t, "boolean", typeName(true))
	assert.Equal(t, "integer", typeName(num(t, "3")))
	assert.Equal(t, "number", typeName(num(t, "3.5")))
	assert.Equal(t, "string", typeName("x"))
	assert.Equal(t, "array", typeName([]any{}))
	assert.Equal(t, "object", typeName(NewObject()))
}

func TestDeepEqualNumericCoercion(t *testing.T) {
	assert.True(t, deepEqual(num(t, "1"), num(t, "1.0")))
	assert.False(t, deepEqual(num(t, "1"), num(t, "2")))
}

func TestDeepEqualObjectIgnoresKeyOrder(t *testing.T) {
	a := ObjectOf("x", num(t, "1"), "y", num(t, "2"))
	b := ObjectOf("y", num(t, "2"), "x", num(t, "1"))
	assert.True(t, deepEqual(a, b))
}

func TestDeepEqualArrayIsOrderSensitive(t *testing.T) {
	a := []any{num(t, "1"), num(t, "2")}
	b := []any{num(t, "2"), num(t, "1")}
	assert.False(t, deepEqual(a, b))
}
