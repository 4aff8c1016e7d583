package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// evaluateUniqueItems checks that every element of an array instance is
// distinct when "uniqueItems" is true. Non-array instances always pass.
func evaluateUniqueItems(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	unique, ok := value.(bool)
	if !ok || !unique {
		return nil
	}
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}

	seen := make(map[string][]int)
	for i, item := range arr {
		key := normalizeForComparison(item)
		seen[key] = append(seen[key], i)
	}

	var duplicates []string
	for _, indices := range seen {
		if len(indices) > 1 {
			oneBased := make([]string, len(indices))
			for i, idx := range indices {
				oneBased[i] = fmt.Sprint(idx + 1)
			}
			duplicates = append(duplicates, "("+strings.Join(oneBased, ", ")+")")
		}
	}
	if len(duplicates) == 0 {
		return nil
	}
	sort.Strings(duplicates)
	return []*ValidationError{ctx.newError("unique_items_mismatch", "Found duplicates at the following index groups: {duplicates}", map[string]any{
		"duplicates": strings.Join(duplicates, ", "),
	})}
}

// normalizeForComparison renders value as a canonical string so two
// structurally-equal JSON values (including objects with the same
// key/value pairs in a different order) produce the same key.
func normalizeForComparison(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("%t", v)
	case string:
		return fmt.Sprintf("%q", v)
	case *Number:
		return "n:" + v.RatString()
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = normalizeForComparison(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case *Object:
		keys := append([]string(nil), v.Keys()...)
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := v.Get(k)
			parts[i] = fmt.Sprintf("%q:%s", k, normalizeForComparison(val))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}
