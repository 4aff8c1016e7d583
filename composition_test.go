package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOfAggregatesSubErrorsPlusSummary(t *testing.T) {
	schema := ObjectOf("allOf", []any{
		ObjectOf("minimum", num(t, "10")),
		ObjectOf("type", "integer"),
	})
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate(num(t, "3.5"))
	require.False(t, result.Valid)
	// Both branches fail: minimum and type sub-errors plus the summary.
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "all_of_mismatch", result.Errors[len(result.Errors)-1].Code)
}

func TestAnyOfSucceedsWhenOneBranchMatches(t *testing.T) {
	schema := ObjectOf("anyOf", []any{
		ObjectOf("type", "string"),
		ObjectOf("type", "integer"),
	})
	v, err := New(schema)
	require.NoError(t, err)

	assert.True(t, v.Validate("x").Valid)
	assert.True(t, v.Validate(num(t, "1")).Valid)

	result := v.Validate(true)
	require.False(t, result.Valid)
	assert.Equal(t, "any_of_mismatch", result.Errors[len(result.Errors)-1].Code)
}

func TestOneOfRejectsMultipleMatches(t *testing.T) {
	schema := ObjectOf("oneOf", []any{
		ObjectOf("minimum", num(t, "0")),
		ObjectOf("type", "integer"),
	})
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate(num(t, "5"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "one_of_multiple_matches", result.Errors[0].Code)

	assert.True(t, v.Validate(num(t, "5.5")).Valid)
}

func TestItemsTupleAndAdditionalItems(t *testing.T) {
	schema := ObjectOf(
		"items", []any{ObjectOf("type", "string"), ObjectOf("type", "integer")},
		"additionalItems", ObjectOf("type", "boolean"),
	)
	v, err := New(schema)
	require.NoError(t, err)

	assert.True(t, v.Validate([]any{"x", num(t, "1"), true, false}).Valid)
	assert.False(t, v.Validate([]any{"x", num(t, "1"), "not-a-bool"}).Valid)
	assert.False(t, v.Validate([]any{num(t, "1"), "x"}).Valid, "tuple positions swapped")
}

func TestPrefixItemsAndItemsSplitForm(t *testing.T) {
	schema := ObjectOf(
		"$schema", "https://json-schema.org/draft/2020-12/schema",
		"prefixItems", []any{ObjectOf("type", "string")},
		"items", ObjectOf("type", "integer"),
	)
	v, err := New(schema)
	require.NoError(t, err)

	assert.True(t, v.Validate([]any{"x", num(t, "1"), num(t, "2")}).Valid)
	assert.False(t, v.Validate([]any{"x", "y"}).Valid)
	assert.False(t, v.Validate([]any{num(t, "1")}).Valid, "prefix position must be a string")
}

func TestPropertyNamesAggregatesInvalidKeys(t *testing.T) {
	schema := ObjectOf(
		"$schema", "http://json-schema.org/draft-06/schema#",
		"propertyNames", ObjectOf("pattern", "^[a-z]+$"),
	)
	v, err := New(schema)
	require.NoError(t, err)

	assert.True(t, v.Validate(ObjectOf("abc", num(t, "1"), "def", num(t, "2"))).Valid)

	result := v.Validate(ObjectOf("ABC", num(t, "1"), "def", num(t, "2")))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "property_name_mismatch", result.Errors[0].Code)
}
