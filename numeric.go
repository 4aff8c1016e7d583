package jsonschema

// asNumber reports whether v is a JSON number, returning it as a *Number.
func asNumber(v any) (*Number, bool) {
	n, ok := v.(*Number)
	return n, ok
}
