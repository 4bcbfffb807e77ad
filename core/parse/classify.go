package parse

import "strings"

// KeyDelimiter joins the key-column tokens of a row into one instance key.
// It is not expected to appear inside data tokens.
const KeyDelimiter = "|"

// metadataKeywords is the fixed set of header keywords of the report
// dialect. A line whose first token matches is skipped entirely, no matter
// how many tokens follow. The set is a static property of the input format,
// not configuration.
var metadataKeywords = map[string]struct{}{
	"VERSION":         {},
	"CREATION":        {},
	"CREATOR":         {},
	"PROGRAM":         {},
	"DIVIDERCHAR":     {},
	"DESIGN":          {},
	"UNITS":           {},
	"INSTANCE_COUNT":  {},
	"NOMINAL_VOLTAGE": {},
	"POWER_NET":       {},
	"GROUND_NET":      {},
	"WINDOW":          {},
	"RP_VALUE":        {},
	"RP_FORMAT":       {},
	"RP_INST_LIMIT":   {},
	"RP_THRESHOLD":    {},
	"RP_PIN_NAME":     {},
	"MICRON_UNITS":    {},
	"INST_NAME":       {},
}

// Columns designates which tokens of a row form the instance key and which
// one carries the value. Indices are zero-based.
type Columns struct {
	// Key lists the key-column indices, in key order. Must be non-empty.
	Key []int
	// Value is the value-column index.
	Value int
}

// Max returns the highest column index the configuration touches. A row
// needs at least Max+1 tokens to be usable.
func (c Columns) Max() int {
	max := c.Value
	for _, i := range c.Key {
		if i > max {
			max = i
		}
	}
	return max
}

// Classify inspects one line (without its trailing terminator) and, if it is
// a data row, extracts the instance key and value. It returns ok=false for
// blank lines, comments, metadata headers, rows too short for the configured
// columns, and rows where a configured index falls out of range. Skipping is
// per row; a bad row never fails the surrounding chunk.
//
// Classify is stateless: the same line always yields the same result.
func Classify(line string, cols Columns) (key string, val Value, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", Value{}, false
	}

	fields := strings.Fields(trimmed)
	if _, meta := metadataKeywords[fields[0]]; meta {
		return "", Value{}, false
	}
	if len(fields) <= cols.Max() {
		// Short row. Dropped silently.
		return "", Value{}, false
	}

	parts := make([]string, 0, len(cols.Key))
	for _, i := range cols.Key {
		if i < 0 || i >= len(fields) {
			return "", Value{}, false
		}
		parts = append(parts, fields[i])
	}
	if cols.Value < 0 || cols.Value >= len(fields) {
		return "", Value{}, false
	}

	return strings.Join(parts, KeyDelimiter), NewValue(fields[cols.Value]), true
}

// SplitKey breaks an instance key back into its column tokens.
func SplitKey(key string) []string {
	return strings.Split(key, KeyDelimiter)
}
