package jsonschema

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Localizer renders a ValidationError's message in a chosen locale.
type Localizer = i18n.Localizer

// NewLocaleBundle loads the package's built-in English and Simplified
// Chinese message catalogs, keyed by ValidationError.Code, for use with
// ValidationError.Localize.
func NewLocaleBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(embeddedLocales, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}
