package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"

	"repcomp/core/compare"
	"repcomp/core/parse"
)

const (
	// ComparisonName is the file name of the matched-keys CSV artifact.
	ComparisonName = "comparison.csv"
	// MissingName is the file name of the missing-keys text artifact.
	MissingName = "missing_instances.txt"
)

// Inputs bundles everything the writer needs for one run.
type Inputs struct {
	// File1 and File2 are the display names of the inputs (base names).
	File1 string
	File2 string
	// Values1 and Values2 are the per-file key to value mappings.
	Values1 map[string]parse.Value
	Values2 map[string]parse.Value
	// Recon is the reconciliation of the two key sets.
	Recon compare.Reconciliation
	// ValueName1 and ValueName2 label the value columns in the CSV header.
	ValueName1 string
	ValueName2 string
}

// keyWidth returns the number of key columns, derived from the first key at
// hand. Defaults to 1 when there are no keys at all.
func (in Inputs) keyWidth() int {
	for _, keys := range [][]string{in.Recon.Matched, in.Recon.MissingInSecond, in.Recon.MissingInFirst} {
		if len(keys) > 0 {
			return len(parse.SplitKey(keys[0]))
		}
	}
	return 1
}

// writeComparisonCSV writes the matched-key comparison table and returns the
// number of data rows written.
func writeComparisonCSV(path string, in Inputs) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create comparison file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, 0, in.keyWidth()+4)
	for i := 0; i < in.keyWidth(); i++ {
		header = append(header, fmt.Sprintf("Key_%d", i+1))
	}
	header = append(header,
		fmt.Sprintf("%s_%s", in.File1, in.ValueName1),
		fmt.Sprintf("%s_%s", in.File2, in.ValueName2),
		"Difference",
		"Deviation / Match",
	)
	if err := w.Write(header); err != nil {
		return 0, err
	}

	rows := 0
	for _, key := range in.Recon.Matched {
		v1 := in.Values1[key]
		v2 := in.Values2[key]

		record := parse.SplitKey(key)
		d := compare.Diff(v1, v2)
		if d.Kind == compare.DiffNumeric {
			record = append(record,
				fmt.Sprintf("%.4f", v1.Num),
				fmt.Sprintf("%.4f", v2.Num),
				fmt.Sprintf("%.4f", d.Difference),
				formatDeviation(d.Deviation),
			)
		} else {
			equal := "NO"
			if d.Equal {
				equal = "YES"
			}
			record = append(record, v1.Raw, v2.Raw, "N/A", equal)
		}

		if err := w.Write(record); err != nil {
			return rows, err
		}
		rows++
	}

	w.Flush()
	return rows, w.Error()
}

// formatDeviation renders a percent deviation, using the Inf sentinel when
// the denominator was zero.
func formatDeviation(dev float64) string {
	if math.IsInf(dev, 0) {
		return "Inf%"
	}
	return fmt.Sprintf("%.2f%%", dev)
}

// writeMissing writes the plain listing of keys absent from either file.
func writeMissing(path string, in Inputs) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create missing file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	banner := strings.Repeat("=", 60)

	fmt.Fprintf(w, "%s\nInstances missing from %s:\n%s\n", banner, in.File2, banner)
	for _, key := range in.Recon.MissingInSecond {
		fmt.Fprintln(w, strings.Join(parse.SplitKey(key), " | "))
	}

	fmt.Fprintf(w, "\n%s\nInstances missing from %s:\n%s\n", banner, in.File1, banner)
	for _, key := range in.Recon.MissingInFirst {
		fmt.Fprintln(w, strings.Join(parse.SplitKey(key), " | "))
	}

	return w.Flush()
}

// ColumnName derives a human-readable label for a value column by reading
// the first data-looking line of the file. Falls back to a positional label
// when the file is unreadable or the line is too short.
func ColumnName(path string, col int) string {
	fallback := fmt.Sprintf("Column_%d", col+1)

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if col < len(fields) {
			return fields[col]
		}
		return fallback
	}
	return fallback
}
