package compare

import (
	"math"

	"repcomp/core/parse"
)

// DiffKind discriminates how a matched pair of values was compared.
type DiffKind int

const (
	// DiffNumeric means both values were numeric and Difference/Deviation
	// are valid.
	DiffNumeric DiffKind = iota
	// DiffText means at least one value was text and Equal is valid.
	DiffText
)

// ValueDiff is the comparison of one matched key's values.
type ValueDiff struct {
	// Kind tells which branch of the comparison applies.
	Kind DiffKind

	// Difference is first minus second. Numeric only.
	Difference float64
	// Deviation is the percent deviation relative to the second value.
	// +Inf whenever the second value is zero.
	Deviation float64

	// Equal reports raw string equality. Text only.
	Equal bool
}

// Diff compares the values recorded for a matched key in both files.
// The comparison branches on the value tags: only two numeric readings are
// diffed numerically, every other combination degrades to exact string
// comparison of the raw tokens.
func Diff(first, second parse.Value) ValueDiff {
	if first.IsNumeric() && second.IsNumeric() {
		d := first.Num - second.Num
		// A zero denominator always yields the sentinel, even when both
		// values are zero.
		dev := math.Inf(1)
		if second.Num != 0 {
			dev = d / second.Num * 100
		}
		return ValueDiff{Kind: DiffNumeric, Difference: d, Deviation: dev}
	}
	return ValueDiff{Kind: DiffText, Equal: first.Raw == second.Raw}
}
