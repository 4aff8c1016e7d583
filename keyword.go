package jsonschema

// KeywordFunc implements one JSON Schema keyword. keywordValue is the value
// the keyword was given in the schema; instance is the JSON value currently
// under evaluation; schema is the enclosing schema object, so keywords that
// need to read a sibling (if reading then/else, additionalProperties reading
// properties and patternProperties) can do so.
type KeywordFunc func(ctx *Context, keywordValue any, instance any, schema *Object) []*ValidationError

// Table is a dialect's keyword dispatch table: keyword name to the function
// implementing it. Keys absent from the table are unrecognized keywords and
// are ignored by descend, not an error.
type Table struct {
	funcs        map[string]KeywordFunc
	refExclusive bool // $ref suppresses sibling keywords (Draft 4-7) vs. composes with them (2019-09+)
}

func newTable(refExclusive bool) *Table {
	return &Table{funcs: make(map[string]KeywordFunc), refExclusive: refExclusive}
}

func (t *Table) clone() *Table {
	nt := newTable(t.refExclusive)
	for k, v := range t.funcs {
		nt.funcs[k] = v
	}
	return nt
}

// with returns a copy of t with overrides applied. A nil function value
// removes that keyword from the resulting table.
func (t *Table) with(overrides map[string]KeywordFunc) *Table {
	nt := t.clone()
	for k, v := range overrides {
		if v == nil {
			delete(nt.funcs, k)
			continue
		}
		nt.funcs[k] = v
	}
	return nt
}

func (t *Table) lookup(keyword string) (KeywordFunc, bool) {
	fn, ok := t.funcs[keyword]
	return fn, ok
}
