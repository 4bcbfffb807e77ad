package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DataRow(t *testing.T) {
	cols := Columns{Key: []int{0, 1}, Value: 3}

	key, val, ok := Classify("A B 1 10.5", cols)
	assert.True(t, ok)
	assert.Equal(t, "A|B", key)
	assert.True(t, val.IsNumeric())
	assert.Equal(t, 10.5, val.Num)
	assert.Equal(t, "10.5", val.Raw)
}

func TestClassify_TextValue(t *testing.T) {
	cols := Columns{Key: []int{0}, Value: 1}

	key, val, ok := Classify("inst0 enabled", cols)
	assert.True(t, ok)
	assert.Equal(t, "inst0", key)
	assert.False(t, val.IsNumeric())
	assert.Equal(t, "enabled", val.Raw)
}

func TestClassify_Skips(t *testing.T) {
	cols := Columns{Key: []int{0}, Value: 1}

	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"whitespace only", "   \t  "},
		{"carriage return artifact", "\r"},
		{"comment", "# leakage per instance"},
		{"metadata keyword", "VERSION 1.0"},
		{"metadata keyword with many tokens", "UNITS 1 mW extra tokens here"},
		{"short row", "lonely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := Classify(tt.line, cols)
			assert.False(t, ok)
		})
	}
}

func TestClassify_ShortRowAgainstMaxColumn(t *testing.T) {
	// Value column 3 needs at least four tokens.
	cols := Columns{Key: []int{0, 1}, Value: 3}

	_, _, ok := Classify("A B 1", cols)
	assert.False(t, ok)
}

func TestClassify_OutOfRangeColumnSkipsRow(t *testing.T) {
	// Key index beyond the token count must drop the row, not panic.
	cols := Columns{Key: []int{5}, Value: 1}

	_, _, ok := Classify("a b c", cols)
	assert.False(t, ok)
}

func TestClassify_Idempotent(t *testing.T) {
	cols := Columns{Key: []int{0, 1}, Value: 3}
	line := "core/alu reg_17 1 0.0042"

	key1, val1, ok1 := Classify(line, cols)
	key2, val2, ok2 := Classify(line, cols)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, key1, key2)
	assert.Equal(t, val1, val2)
}

func TestColumns_Max(t *testing.T) {
	assert.Equal(t, 3, Columns{Key: []int{0, 1}, Value: 3}.Max())
	assert.Equal(t, 7, Columns{Key: []int{7, 1}, Value: 3}.Max())
	assert.Equal(t, 0, Columns{Key: []int{0}, Value: 0}.Max())
}

func TestSplitKey(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitKey("A|B"))
	assert.Equal(t, []string{"X"}, SplitKey("X"))
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		numeric bool
		num     float64
	}{
		{"integer", "42", true, 42},
		{"float", "10.5", true, 10.5},
		{"scientific", "1.2e-9", true, 1.2e-9},
		{"negative", "-0.004", true, -0.004},
		{"text", "VDD", false, 0},
		{"mixed", "12mW", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValue(tt.raw)
			assert.Equal(t, tt.raw, v.Raw)
			assert.Equal(t, tt.numeric, v.IsNumeric())
			if tt.numeric {
				assert.Equal(t, tt.num, v.Num)
			}
		})
	}
}
