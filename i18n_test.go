package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeRendersRegisteredLocale(t *testing.T) {
	v, err := New(ObjectOf("type", "string"))
	require.NoError(t, err)

	result := v.Validate(num(t, "1"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)

	bundle, err := NewLocaleBundle()
	require.NoError(t, err)

	en := bundle.NewLocalizer("en")
	zh := bundle.NewLocalizer("zh-Hans")

	enMsg := result.Errors[0].Localize(en)
	zhMsg := result.Errors[0].Localize(zh)
	assert.NotEmpty(t, enMsg)
	assert.NotEmpty(t, zhMsg)
	assert.NotEqual(t, enMsg, zhMsg)
}

func TestLocalizeFallsBackWithoutLocalizer(t *testing.T) {
	e := &ValidationError{Message: "fallback", Code: "type_mismatch"}
	assert.Equal(t, "fallback", e.Localize(nil))
}
