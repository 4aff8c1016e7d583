package jsonschema

import (
	"fmt"
	"net/url"
	"strings"
)

// replace substitutes {key} placeholders in template with params, the same
// templating convention every keyword function's error message uses.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// resolveURIRef resolves relative against base the way a $id or $ref value
// resolves against its enclosing document's base URI.
func resolveURIRef(base, relative string) string {
	if relative == "" {
		return base
	}
	if base == "" {
		return relative
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return relative
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return relative
	}
	return baseURL.ResolveReference(relURL).String()
}

// isAbsoluteURI reports whether urlStr carries both a scheme and an
// authority, i.e. names a different document entirely.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// splitRef separates a $ref value into its URI part and fragment part.
func splitRef(ref string) (uri string, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}
