package jsonschema

import "strings"

// Dialect URIs recognized via a schema's $schema keyword. Matching is by
// prefix so trailing "#" or scheme variations (http/https) still resolve.
const (
	dialectDraft4    = "http://json-schema.org/draft-04/schema"
	dialectDraft6    = "http://json-schema.org/draft-06/schema"
	dialectDraft7    = "http://json-schema.org/draft-07/schema"
	dialectDraft2019 = "https://json-schema.org/draft/2019-09/schema"
	dialectDraft2020 = "https://json-schema.org/draft/2020-12/schema"
)

// draft4Table is the base dispatch table every later dialect composes
// forward from: in Draft 4-7, a $ref present on a schema object suppresses
// every sibling keyword during dispatch.
func draft4Table() *Table {
	t := newTable(true)
	t.funcs["type"] = evaluateType
	t.funcs["enum"] = evaluateEnum
	t.funcs["multipleOf"] = evaluateMultipleOf
	t.funcs["maximum"] = evaluateMaximum
	t.funcs["exclusiveMaximum"] = evaluateExclusiveMaximumBool
	t.funcs["minimum"] = evaluateMinimum
	t.funcs["exclusiveMinimum"] = evaluateExclusiveMinimumBool
	t.funcs["maxLength"] = evaluateMaxLength
	t.funcs["minLength"] = evaluateMinLength
	t.funcs["pattern"] = evaluatePattern
	t.funcs["maxItems"] = evaluateMaxItems
	t.funcs["minItems"] = evaluateMinItems
	t.funcs["uniqueItems"] = evaluateUniqueItems
	t.funcs["maxProperties"] = evaluateMaxProperties
	t.funcs["minProperties"] = evaluateMinProperties
	t.funcs["required"] = evaluateRequired
	t.funcs["properties"] = evaluateProperties
	t.funcs["patternProperties"] = evaluatePatternProperties
	t.funcs["additionalProperties"] = evaluateAdditionalProperties
	t.funcs["items"] = evaluateItems
	t.funcs["additionalItems"] = evaluateAdditionalItems
	t.funcs["dependencies"] = evaluateDependencies
	t.funcs["allOf"] = evaluateAllOf
	t.funcs["anyOf"] = evaluateAnyOf
	t.funcs["oneOf"] = evaluateOneOf
	t.funcs["not"] = evaluateNot
	t.funcs["$ref"] = evaluateRef
	t.funcs["format"] = evaluateFormat
	return t
}

// draft6Table adds the Draft 6 deltas: const, contains, propertyNames, and
// numeric-valued (rather than boolean-companion) exclusiveMinimum/Maximum.
func draft6Table() *Table {
	return draft4Table().with(map[string]KeywordFunc{
		"const":            evaluateConst,
		"contains":         evaluateContains,
		"propertyNames":    evaluatePropertyNames,
		"exclusiveMaximum": evaluateExclusiveMaximumNumber,
		"exclusiveMinimum": evaluateExclusiveMinimumNumber,
	})
}

// draft7Table adds if/then/else. then and else are deliberately not
// registered as dispatch entries: they are only ever read as siblings by the
// if keyword function, and an unregistered keyword is simply ignored by
// descend when it appears on its own.
func draft7Table() *Table {
	return draft6Table().with(map[string]KeywordFunc{
		"if": evaluateConditional,
	})
}

// draft2019Table adds dependentRequired/dependentSchemas as the Draft
// 2019-09 split of Draft 7's single "dependencies" keyword (both spellings
// stay registered; real-world schemas rarely mix them), $recursiveRef as a
// local-only alias of $ref, and surfaces unevaluatedProperties/Items as an
// unsupported feature rather than silently ignoring them.
func draft2019Table() *Table {
	return draft7Table().with(map[string]KeywordFunc{
		"dependentRequired":     evaluateDependentRequired,
		"dependentSchemas":      evaluateDependentSchemas,
		"unevaluatedProperties": evaluateUnsupported,
		"unevaluatedItems":      evaluateUnsupported,
		"$recursiveRef":         evaluateRef,
	})
}

// draft2020Table adds prefixItems (the 2020-12 split of array-valued
// items) and $dynamicRef as a local-only alias of $ref. $ref stops being
// exclusive from 2019-09 onward: siblings of $ref are evaluated normally.
func draft2020Table() *Table {
	t := draft2019Table().with(map[string]KeywordFunc{
		"prefixItems": evaluatePrefixItems,
		"$dynamicRef": evaluateRef,
	})
	t.refExclusive = false
	return t
}

// draft2019TableNonExclusive is draft2019Table with $ref made
// non-exclusive, matching the 2019-09 specification (the distilled spec
// only calls out the exclusivity flip at 2019-09 boundary; both 2019-09 and
// 2020-12 share non-exclusive $ref).
func draft2019TableNonExclusive() *Table {
	t := draft2019Table()
	t.refExclusive = false
	return t
}

// selectDialectTable picks a dispatch table from a schema's $schema
// keyword, defaulting to Draft 4 when absent or unrecognized.
func selectDialectTable(schema any) *Table {
	obj, ok := schema.(*Object)
	if !ok {
		return draft4Table()
	}
	raw, ok := obj.Get("$schema")
	if !ok {
		return draft4Table()
	}
	uri, ok := raw.(string)
	if !ok {
		return draft4Table()
	}
	uri = strings.TrimSuffix(uri, "#")
	uri = strings.TrimSuffix(uri, "/")
	switch {
	case hasDialectPrefix(uri, dialectDraft2020):
		return draft2020Table()
	case hasDialectPrefix(uri, dialectDraft2019):
		return draft2019TableNonExclusive()
	case hasDialectPrefix(uri, dialectDraft7):
		return draft7Table()
	case hasDialectPrefix(uri, dialectDraft6):
		return draft6Table()
	case hasDialectPrefix(uri, dialectDraft4):
		return draft4Table()
	default:
		return draft4Table()
	}
}

func hasDialectPrefix(uri, dialect string) bool {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(dialect, "#"), "/")
	return strings.HasPrefix(uri, trimmed) ||
		strings.HasPrefix(strings.Replace(uri, "http://", "https://", 1), trimmed) ||
		strings.HasPrefix(strings.Replace(uri, "https://", "http://", 1), trimmed)
}
