package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/kschemago/jsonschemacheck"
)

// decodeFile reads path as JSON or YAML (by extension) and returns it in
// jsonschema's order-preserving value model. YAML input is first
// normalized to JSON text via goccy/go-yaml so both paths share the same
// jsontext-based decode below, matching the document's own key order.
func decodeFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if isYAMLPath(path) {
		raw, err = goyaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("converting %s from yaml: %w", path, err)
		}
	}

	dec := jsontext.NewDecoder(strings.NewReader(string(raw)))
	value, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return value, nil
}

func isYAMLPath(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decodeValue reads one JSON value from dec, preserving object key order
// via jsonschema.Object and numeric literal precision via jsonschema.Number.
func decodeValue(dec *jsontext.Decoder) (any, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case 'n':
		return nil, nil
	case 't', 'f':
		return tok.Bool(), nil
	case '"':
		return tok.String(), nil
	case '0':
		return jsonschema.NewNumberFromString(tok.String())
	case '[':
		var arr []any
		for dec.PeekKind() != ']' {
			elem, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		obj := jsonschema.NewObject()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(keyTok.String(), val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected token kind %q", tok.Kind())
	}
}
