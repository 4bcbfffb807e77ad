package parse

import "strconv"

// Kind discriminates the two shapes a field value can take.
type Kind int

const (
	// KindNumeric marks a value whose token parsed as a float.
	KindNumeric Kind = iota
	// KindText marks a value kept as an opaque string.
	KindText
)

// Value is a field value read from a report row. The raw token text is
// always retained so output can reproduce the input exactly; Num is only
// meaningful when Kind is KindNumeric.
type Value struct {
	// Raw is the original token text.
	Raw string
	// Num is the parsed numeric reading, if any.
	Num float64
	// Kind tells whether Num is valid or the value is text-only.
	Kind Kind
}

// NewValue builds a Value from a raw token. It attempts a float parse and
// falls back to a text value when the token is not numeric. A non-numeric
// token is not an error.
func NewValue(raw string) Value {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Raw: raw, Num: n, Kind: KindNumeric}
	}
	return Value{Raw: raw, Kind: KindText}
}

// IsNumeric reports whether the value carries a parsed numeric reading.
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumeric
}
