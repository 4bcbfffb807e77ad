package compare

import (
	"math"
	"testing"

	"repcomp/core/parse"

	"github.com/stretchr/testify/assert"
)

func TestDiff_NumericEqual(t *testing.T) {
	d := Diff(parse.NewValue("100"), parse.NewValue("100"))

	assert.Equal(t, DiffNumeric, d.Kind)
	assert.Equal(t, 0.0, d.Difference)
	assert.Equal(t, 0.0, d.Deviation)
}

func TestDiff_NumericDeviation(t *testing.T) {
	d := Diff(parse.NewValue("15"), parse.NewValue("10"))

	assert.Equal(t, DiffNumeric, d.Kind)
	assert.Equal(t, 5.0, d.Difference)
	assert.Equal(t, 50.0, d.Deviation)
}

func TestDiff_NegativeDeviation(t *testing.T) {
	d := Diff(parse.NewValue("5"), parse.NewValue("10"))

	assert.Equal(t, -5.0, d.Difference)
	assert.Equal(t, -50.0, d.Deviation)
}

func TestDiff_ZeroDenominator(t *testing.T) {
	// file2's value is zero: the deviation must be the infinite sentinel,
	// not a computed ratio.
	d := Diff(parse.NewValue("5"), parse.NewValue("0"))

	assert.Equal(t, DiffNumeric, d.Kind)
	assert.Equal(t, 5.0, d.Difference)
	assert.True(t, math.IsInf(d.Deviation, 1))
}

func TestDiff_BothZero(t *testing.T) {
	// The sentinel depends only on the denominator; two equal zeros still
	// have no baseline to deviate from.
	d := Diff(parse.NewValue("0"), parse.NewValue("0"))

	assert.Equal(t, 0.0, d.Difference)
	assert.True(t, math.IsInf(d.Deviation, 1))
}

func TestDiff_TextValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"equal strings", "VDD", "VDD", true},
		{"different strings", "VDD", "VSS", false},
		{"numeric vs text", "1.5", "VDD", false},
		{"text vs numeric", "VDD", "1.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff(parse.NewValue(tt.a), parse.NewValue(tt.b))
			assert.Equal(t, DiffText, d.Kind)
			assert.Equal(t, tt.equal, d.Equal)
		})
	}
}
