package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenientConstBooleanAcceptsEitherBoolean(t *testing.T) {
	v, err := NewCustom(ObjectOf("const", true))
	require.NoError(t, err)
	assert.True(t, v.Validate(true).Valid)
	assert.True(t, v.Validate(false).Valid, "const:true under the lenient overlay admits any boolean instance")
	assert.False(t, v.Validate("x").Valid)
}

func TestLenientConstNonBooleanBehavesStrictly(t *testing.T) {
	v, err := NewCustom(ObjectOf("const", num(t, "1")))
	require.NoError(t, err)
	assert.True(t, v.Validate(num(t, "1")).Valid)
	assert.False(t, v.Validate(num(t, "2")).Valid)
}

func TestLenientPropertiesSkipsNullValuedKeys(t *testing.T) {
	schema := ObjectOf("properties", ObjectOf("age", ObjectOf("type", "integer")))
	v, err := NewCustom(schema)
	require.NoError(t, err)
	assert.True(t, v.Validate(ObjectOf("age", nil)).Valid)
	assert.False(t, v.Validate(ObjectOf("age", "not-a-number")).Valid)
}

func TestLenientWholeInstanceNull(t *testing.T) {
	schema := ObjectOf("type", "object", "properties", ObjectOf("a", ObjectOf("type", "string")))
	v, err := NewCustom(schema)
	require.NoError(t, err)
	assert.True(t, v.Validate(nil).Valid)
}

func TestCustomValidateAdmitsSupersetOfValidate(t *testing.T) {
	schemas := []*Object{
		ObjectOf("type", "object", "properties", ObjectOf("a", ObjectOf("type", "string"))),
		ObjectOf("properties", ObjectOf("a", ObjectOf("const", true)), "allOf", []any{
			ObjectOf("properties", ObjectOf("a", ObjectOf("const", true))),
		}),
		ObjectOf("const", true),
	}
	instances := []any{
		nil, true, false, "x", num(t, "1"),
		ObjectOf("a", nil), ObjectOf("a", "x"), ObjectOf("a", false),
	}

	for _, schema := range schemas {
		strict, err := newValidator(schema, draft7Table())
		require.NoError(t, err)
		lenient, err := NewCustom(schema)
		require.NoError(t, err)
		for _, instance := range instances {
			if strict.Validate(instance).Valid {
				assert.True(t, lenient.Validate(instance).Valid,
					"customValidate must admit everything validate admits: %+v against %+v", instance, schema)
			}
		}
	}
}
