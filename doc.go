// Package jsonschema validates decoded JSON values against a JSON Schema
// document, supporting Draft 4, Draft 6, Draft 7, 2019-09, and 2020-12
// dialects (selected from a schema's own $schema keyword) plus a lenient,
// null-permissive overlay of Draft 7 for data sources that spell "unset"
// as JSON null rather than omitting the field.
//
// Validation dispatches each schema keyword to an independent function
// against a dialect-specific table, producing every violation found in
// deterministic, schema-key-order-driven order rather than stopping at the
// first failure.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for the format
// validator algorithms this package's built-in format registry is based on.
package jsonschema
