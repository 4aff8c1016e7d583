package jsonschema

import (
	"fmt"
	"math/big"
	"strings"
)

// Number wraps a big.Rat so numeric keywords (multipleOf, minimum, maximum,
// exclusiveMinimum, exclusiveMaximum) compare JSON numbers by exact decimal
// value instead of through lossy float64 arithmetic.
type Number struct {
	*big.Rat
}

// IsInteger reports whether the number's mathematical value is integral,
// regardless of how it was spelled in source (1.0 is an integer).
func (n *Number) IsInteger() bool {
	return n.Rat.IsInt()
}

// NewNumber converts a Go value (as produced by decoding a JSON literal)
// into a Number. Accepts float64/int-family values and numeric strings.
func NewNumber(value any) (*Number, error) {
	rat, err := convertToBigRat(value)
	if err != nil {
		return nil, err
	}
	return &Number{rat}, nil
}

// NewNumberFromString parses a JSON number literal exactly, preserving
// precision that float64 would round away.
func NewNumberFromString(literal string) (*Number, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(literal); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumberLiteral, literal)
	}
	return &Number{rat}, nil
}

func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidNumberLiteral, data)
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(str); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumberLiteral, str)
	}
	return rat, nil
}

// FormatNumber renders n the way a JSON number literal would read: a plain
// integer string when exact, otherwise a trimmed decimal.
func FormatNumber(n *Number) string {
	if n == nil {
		return "null"
	}
	if n.Rat.IsInt() {
		return n.Rat.Num().String()
	}
	dec := n.Rat.FloatString(10)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
