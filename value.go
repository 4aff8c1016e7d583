package jsonschema

import "reflect"

// Object is an order-preserving string-keyed JSON object. A plain
// map[string]any cannot serve as the schema/instance value type because
// evaluation order (and therefore error order) must follow the order keys
// were written in the source document, not Go's randomized map order.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// ObjectOf builds an Object from alternating key, value pairs, preserving the
// order the pairs were given in. Handy for schemas and instances written
// directly in Go code, such as in tests.
func ObjectOf(pairs ...any) *Object {
	o := NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		o.Set(key, pairs[i+1])
	}
	return o
}

// Set assigns value to key, appending key to the iteration order the first
// time it is seen.
func (o *Object) Set(key string, value any) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// Get returns the value stored under key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the object's keys in insertion order. Callers must not mutate
// the returned slice.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of keys in the object.
func (o *Object) Len() int { return len(o.keys) }

// typeName reports the JSON Schema type name for v, distinguishing integral
// numbers ("integer") from the general "number" the way multiple keywords
// (type, and implicitly enum/const) need.
func typeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case *Number:
		if t.IsInteger() {
			return "integer"
		}
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *Object:
		return "object"
	default:
		return "unknown"
	}
}

// identityOf returns a comparable identity for v suitable for use as part of
// a cycle-detection map key. *Object and scalars are already comparable;
// []any is not, so its backing array pointer is used instead.
func identityOf(v any) any {
	if arr, ok := v.([]any); ok {
		return reflect.ValueOf(arr).Pointer()
	}
	return v
}

// deepEqual reports whether a and b represent the same JSON value, treating
// numerically-equal *Number values (1 and 1.0) as equal regardless of how
// they were spelled, and object key order as insignificant.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Cmp(bv.Rat) == 0
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			aval, _ := av.Get(k)
			bval, ok := bv.Get(k)
			if !ok || !deepEqual(aval, bval) {
				return false
			}
		}
		return true
	}
	return false
}
