package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1/S2: required + properties.
func TestSeedRequiredAndProperties(t *testing.T) {
	schema := ObjectOf(
		"type", "object",
		"properties", ObjectOf(
			"name", ObjectOf("type", "string"),
			"price", ObjectOf("type", "number"),
		),
		"required", []any{"name"},
	)
	v, err := New(schema)
	require.NoError(t, err)

	valid := v.Validate(ObjectOf("name", "Eggs", "price", num(t, "34.99")))
	assert.True(t, valid.Valid)
	assert.Empty(t, valid.Errors)

	invalid := v.Validate(ObjectOf("price", num(t, "34.99")))
	require.False(t, invalid.Valid)
	require.Len(t, invalid.Errors, 1)
	assert.Equal(t, "/required", invalid.Errors[0].KeywordLocation)
	assert.Contains(t, invalid.Errors[0].Message, "name")
}

// S3: null-permissive overlay accepts what the strict dialect rejects.
func TestSeedLenientOverlayAcceptsNull(t *testing.T) {
	schema := ObjectOf(
		"type", "object",
		"properties", ObjectOf(
			"Sodium", ObjectOf("type", "integer"),
			"Carbohydrate", ObjectOf("type", "string", "enum", []any{"Low", "High"}),
		),
		"required", []any{"Sodium"},
		"additionalProperties", false,
	)
	instance := ObjectOf("Sodium", num(t, "140"), "Carbohydrate", nil)

	strict, err := New(schema)
	require.NoError(t, err)
	strictResult := strict.Validate(instance)
	assert.False(t, strictResult.Valid)
	assert.NotEmpty(t, strictResult.Errors)

	lenient, err := NewCustom(schema)
	require.NoError(t, err)
	lenientResult := lenient.Validate(instance)
	assert.True(t, lenientResult.Valid)
	assert.Empty(t, lenientResult.Errors)
}

// S4: additionalProperties rejects under both dialects, citing the extra key.
func TestSeedAdditionalPropertiesRejectsUnderBothDialects(t *testing.T) {
	schema := ObjectOf(
		"type", "object",
		"properties", ObjectOf(
			"Sodium", ObjectOf("type", "integer"),
			"Carbohydrate", ObjectOf("type", "string", "enum", []any{"Low", "High"}),
		),
		"required", []any{"Sodium"},
		"additionalProperties", false,
	)
	instance := ObjectOf("Sodium", num(t, "140"), "ExtraField", "x")

	for _, build := range []func(any) (*Validator, error){New, NewCustom} {
		v, err := build(schema)
		require.NoError(t, err)
		result := v.Validate(instance)
		require.False(t, result.Valid)
		var found bool
		for _, e := range result.Errors {
			if e.KeywordLocation == "/additionalProperties" {
				found = true
				assert.Contains(t, e.Message, "ExtraField")
			}
		}
		assert.True(t, found, "expected an error at /additionalProperties")
	}
}

// S5: the lenient allOf overlay skips a branch asserting const:true.
func TestSeedLenientAllOfSkipsConstTrueBranch(t *testing.T) {
	schema := ObjectOf(
		"$schema", "http://json-schema.org/draft-07/schema#",
		"properties", ObjectOf("a", ObjectOf("const", true)),
		"allOf", []any{
			ObjectOf("properties", ObjectOf("a", ObjectOf("const", true))),
		},
	)
	instance := ObjectOf("a", false)

	strict, err := New(schema)
	require.NoError(t, err)
	assert.False(t, strict.Validate(instance).Valid)

	lenient, err := NewCustom(schema)
	require.NoError(t, err)
	assert.True(t, lenient.Validate(instance).Valid)
}

// S6: uniqueItems treats 1 and 1.0 as the same element.
func TestSeedUniqueItemsNumericEquality(t *testing.T) {
	schema := ObjectOf("type", "array", "uniqueItems", true)
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate([]any{num(t, "1"), num(t, "1.0")})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "unique_items_mismatch", result.Errors[0].Code)
}

// S7: $ref resolves against a local $defs pointer and the error location
// reflects the resolved subschema's keyword path.
func TestSeedRefResolvesLocalDefinition(t *testing.T) {
	schema := ObjectOf(
		"$ref", "#/$defs/x",
		"$defs", ObjectOf("x", ObjectOf("type", "integer")),
	)
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate("hello")
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/$ref/type", result.Errors[0].KeywordLocation)
}

func TestBooleanSchemas(t *testing.T) {
	trueV, err := New(true)
	require.NoError(t, err)
	assert.True(t, trueV.Validate(ObjectOf("x", num(t, "1"))).Valid)

	falseV, err := New(false)
	require.NoError(t, err)
	result := falseV.Validate(ObjectOf("x", num(t, "1")))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "false_schema", result.Errors[0].Code)
}

func TestLocationsEmptyOnReturn(t *testing.T) {
	schema := ObjectOf("type", "object", "properties", ObjectOf("a", ObjectOf("type", "string")))
	v, err := New(schema)
	require.NoError(t, err)

	result := v.Validate(ObjectOf("a", num(t, "1")))
	require.False(t, result.Valid)
	for _, e := range result.Errors {
		assert.NotEmpty(t, e.InstanceLocation)
		assert.NotEmpty(t, e.KeywordLocation)
	}
	// After a descent returns, both location stacks are back to empty.
	ctx := newContext(v, v.table)
	v.descend(ctx, ObjectOf("a", num(t, "1")), v.schema)
	assert.Empty(t, ctx.instanceLoc.segments)
	assert.Empty(t, ctx.keywordLoc.segments)
	again := v.Validate(ObjectOf("a", "ok"))
	assert.True(t, again.Valid)
}

func TestNotIsComplementOfSchema(t *testing.T) {
	inner := ObjectOf("type", "string")
	notSchema := ObjectOf("not", inner)

	strictV, err := New(inner)
	require.NoError(t, err)
	notV, err := New(notSchema)
	require.NoError(t, err)

	for _, instance := range []any{"x", num(t, "1"), true, nil} {
		strictResult := strictV.Validate(instance)
		notResult := notV.Validate(instance)
		assert.Equal(t, strictResult.Valid, !notResult.Valid)
	}
}

func TestAllOfMatchesConjunctionOfBranches(t *testing.T) {
	a := ObjectOf("minimum", num(t, "0"))
	b := ObjectOf("maximum", num(t, "10"))
	allOf := ObjectOf("allOf", []any{a, b})

	av, err := New(a)
	require.NoError(t, err)
	bv, err := New(b)
	require.NoError(t, err)
	combined, err := New(allOf)
	require.NoError(t, err)

	for _, literal := range []string{"-1", "5", "11"} {
		n := num(t, literal)
		expect := av.Validate(n).Valid && bv.Validate(n).Valid
		assert.Equal(t, expect, combined.Validate(n).Valid, "literal %s", literal)
	}
}

func TestRefCycleShortCircuits(t *testing.T) {
	schema := ObjectOf(
		"$defs", ObjectOf("node", ObjectOf(
			"type", "object",
			"properties", ObjectOf(
				"next", ObjectOf("$ref", "#/$defs/node"),
			),
		)),
		"$ref", "#/$defs/node",
	)
	v, err := New(schema)
	require.NoError(t, err)

	a := NewObject()
	b := NewObject()
	a.Set("next", b)
	b.Set("next", a)

	assert.NotPanics(t, func() {
		v.Validate(a)
	})
}

func TestSelectDialectTable(t *testing.T) {
	cases := []struct {
		schemaURI string
		hasConst  bool
		hasIf     bool
	}{
		{"http://json-schema.org/draft-04/schema#", false, false},
		{"http://json-schema.org/draft-06/schema#", true, false},
		{"http://json-schema.org/draft-07/schema#", true, true},
		{"https://json-schema.org/draft/2019-09/schema", true, true},
		{"https://json-schema.org/draft/2020-12/schema", true, true},
	}
	for _, c := range cases {
		schema := ObjectOf("$schema", c.schemaURI)
		table := selectDialectTable(schema)
		_, hasConst := table.lookup("const")
		_, hasIf := table.lookup("if")
		assert.Equal(t, c.hasConst, hasConst, c.schemaURI)
		assert.Equal(t, c.hasIf, hasIf, c.schemaURI)
	}
}

func TestDraft4RefIsExclusiveOfSiblings(t *testing.T) {
	schema := ObjectOf(
		"$schema", "http://json-schema.org/draft-04/schema#",
		"$ref", "#/$defs/x",
		"$defs", ObjectOf("x", ObjectOf("type", "integer")),
		"minimum", num(t, "1000"),
	)
	v, err := New(schema)
	require.NoError(t, err)
	// minimum:1000 would reject 5 if evaluated; a draft4 $ref sibling must
	// be ignored entirely.
	result := v.Validate(num(t, "5"))
	assert.True(t, result.Valid)
}

func TestDraft2020RefComposesWithSiblings(t *testing.T) {
	schema := ObjectOf(
		"$schema", "https://json-schema.org/draft/2020-12/schema",
		"$ref", "#/$defs/x",
		"$defs", ObjectOf("x", ObjectOf("type", "integer")),
		"minimum", num(t, "1000"),
	)
	v, err := New(schema)
	require.NoError(t, err)
	result := v.Validate(num(t, "5"))
	assert.False(t, result.Valid)
}
