package jsonschema

// Validator owns a dispatch table and a reference index built from one root
// schema, and validates instances against it.
type Validator struct {
	schema   any
	table    *Table
	refIndex *ReferenceIndex
}

// New builds a Validator for schema, selecting a dispatch table from the
// schema's $schema keyword (defaulting to Draft 4).
func New(schema any) (*Validator, error) {
	return newValidator(schema, nil)
}

// NewCustom builds a Validator that always uses the lenient, null-permissive
// overlay of Draft 7, regardless of the schema's own $schema keyword.
func NewCustom(schema any) (*Validator, error) {
	return newValidator(schema, lenientTable())
}

func newValidator(schema any, forcedTable *Table) (*Validator, error) {
	if err := validateRefSyntax(schema); err != nil {
		return nil, err
	}
	table := forcedTable
	if table == nil {
		table = selectDialectTable(schema)
	}
	return &Validator{
		schema:   schema,
		table:    table,
		refIndex: buildReferenceIndex(schema),
	}, nil
}

// Validate checks instance against v's schema, returning every violation
// found in deterministic document order.
func (v *Validator) Validate(instance any) *ValidationResult {
	ctx := newContext(v, v.table)
	errs := v.descend(ctx, instance, v.schema)
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// descend dispatches every recognized keyword of subschema, in the schema
// object's own key order, against instance. Unrecognized keywords are
// ignored. A boolean subschema is the trivial accept-everything/reject-
// everything case. Repeated (subschema, instance) pairs already being
// descended into (via a $ref cycle) short-circuit to success rather than
// recursing forever.
func (v *Validator) descend(ctx *Context, instance any, subschema any) []*ValidationError {
	if b, ok := subschema.(bool); ok {
		if b {
			return nil
		}
		return []*ValidationError{ctx.newError("false_schema", "Instance is rejected by a false schema", nil)}
	}

	obj, ok := subschema.(*Object)
	if !ok {
		return nil
	}

	key := visitKey{schema: subschema, instance: identityOf(instance)}
	if ctx.visiting[key] {
		return nil
	}
	ctx.visiting[key] = true
	defer delete(ctx.visiting, key)

	keys := obj.Keys()
	if ctx.table.refExclusive {
		if _, has := obj.Get("$ref"); has {
			keys = []string{"$ref"}
		}
	}

	var errs []*ValidationError
	for _, kw := range keys {
		fn, ok := ctx.table.lookup(kw)
		if !ok {
			continue
		}
		val, _ := obj.Get(kw)
		ctx.pushKeyword(kw)
		errs = append(errs, fn(ctx, val, instance, obj)...)
		ctx.popKeyword()
	}
	return errs
}
