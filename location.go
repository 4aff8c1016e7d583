package jsonschema

import (
	"strconv"
	"strings"
)

// location is a mutable JSON Pointer stack. Two independent instances are
// carried on a Context: one tracking the path into the instance, the other
// the path into the schema.
type location struct {
	segments []any // string (object key) or int (array/tuple index)
}

func (l *location) push(segment any) {
	l.segments = append(l.segments, segment)
}

func (l *location) pop() {
	l.segments = l.segments[:len(l.segments)-1]
}

// pointer renders the stack as a JSON Pointer, escaping ~ and / per RFC 6901.
func (l *location) pointer() string {
	if len(l.segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range l.segments {
		b.WriteByte('/')
		b.WriteString(escapePointerSegment(seg))
	}
	return b.String()
}

func escapePointerSegment(seg any) string {
	var str string
	switch v := seg.(type) {
	case string:
		str = v
	case int:
		str = strconv.Itoa(v)
	}
	str = strings.ReplaceAll(str, "~", "~0")
	str = strings.ReplaceAll(str, "/", "~1")
	return str
}
