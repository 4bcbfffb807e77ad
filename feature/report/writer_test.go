package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repcomp/core/compare"
	"repcomp/core/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(pairs map[string]string) map[string]parse.Value {
	out := make(map[string]parse.Value, len(pairs))
	for k, raw := range pairs {
		out[k] = parse.NewValue(raw)
	}
	return out
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteComparisonCSV_Numeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), ComparisonName)
	in := Inputs{
		File1:      "run_a.rpt",
		File2:      "run_b.rpt",
		Values1:    values(map[string]string{"A|B": "15", "A|C": "100"}),
		Values2:    values(map[string]string{"A|B": "10", "A|C": "100"}),
		Recon:      compare.Reconciliation{Matched: []string{"A|B", "A|C"}},
		ValueName1: "leakage",
		ValueName2: "leakage",
	}

	rows, err := writeComparisonCSV(path, in)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Key_1", "Key_2", "run_a.rpt_leakage", "run_b.rpt_leakage", "Difference", "Deviation / Match"}, records[0])
	assert.Equal(t, []string{"A", "B", "15.0000", "10.0000", "5.0000", "50.00%"}, records[1])
	assert.Equal(t, []string{"A", "C", "100.0000", "100.0000", "0.0000", "0.00%"}, records[2])
}

func TestWriteComparisonCSV_InfiniteDeviation(t *testing.T) {
	path := filepath.Join(t.TempDir(), ComparisonName)
	in := Inputs{
		File1:      "a",
		File2:      "b",
		Values1:    values(map[string]string{"X": "5"}),
		Values2:    values(map[string]string{"X": "0"}),
		Recon:      compare.Reconciliation{Matched: []string{"X"}},
		ValueName1: "v",
		ValueName2: "v",
	}

	_, err := writeComparisonCSV(path, in)
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "Inf%", records[1][4])
}

func TestWriteComparisonCSV_TextValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ComparisonName)
	in := Inputs{
		File1:      "a",
		File2:      "b",
		Values1:    values(map[string]string{"net0": "VDD", "net1": "VDD"}),
		Values2:    values(map[string]string{"net0": "VDD", "net1": "VSS"}),
		Recon:      compare.Reconciliation{Matched: []string{"net0", "net1"}},
		ValueName1: "net",
		ValueName2: "net",
	}

	_, err := writeComparisonCSV(path, in)
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"net0", "VDD", "VDD", "N/A", "YES"}, records[1])
	assert.Equal(t, []string{"net1", "VDD", "VSS", "N/A", "NO"}, records[2])
}

func TestWriteMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), MissingName)
	in := Inputs{
		File1: "first.rpt",
		File2: "second.rpt",
		Recon: compare.Reconciliation{
			MissingInSecond: []string{"A|B", "C|D"},
			MissingInFirst:  []string{"E|F"},
		},
	}

	require.NoError(t, writeMissing(path, in))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Instances missing from second.rpt:")
	assert.Contains(t, text, "A | B")
	assert.Contains(t, text, "C | D")
	assert.Contains(t, text, "Instances missing from first.rpt:")
	assert.Contains(t, text, "E | F")
}

func TestColumnName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.rpt")
	content := "# comment\n\ninstance net toggles leakage\na b 1 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assert.Equal(t, "leakage", ColumnName(path, 3))
	assert.Equal(t, "instance", ColumnName(path, 0))
	assert.Equal(t, "Column_10", ColumnName(path, 9))
	assert.Equal(t, "Column_1", ColumnName(filepath.Join(dir, "missing"), 0))
}

func TestInputs_KeyWidth(t *testing.T) {
	assert.Equal(t, 2, Inputs{Recon: compare.Reconciliation{Matched: []string{"A|B"}}}.keyWidth())
	assert.Equal(t, 3, Inputs{Recon: compare.Reconciliation{MissingInFirst: []string{strings.Join([]string{"a", "b", "c"}, parse.KeyDelimiter)}}}.keyWidth())
	assert.Equal(t, 1, Inputs{}.keyWidth())
}
