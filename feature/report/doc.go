// Package report renders comparison results to persisted artifacts.
//
// A comparison run produces two artifacts: a CSV table of matched instance
// keys (values from both files, numeric difference, and percent deviation or
// a string-equality flag) and a plain-text listing of the keys missing from
// either file. The service writes both to the output directory and can
// archive them to object storage under the run's id, where the results
// feature serves them later.
//
// Column headers for the value columns are derived from the first data line
// of each input file when it looks like a header row, falling back to the
// column index.
package report
