// Package compare reconciles the parse results of two report files.
//
// Reconcile partitions the instance keys of both files into matched keys and
// keys missing from either side, each sorted for deterministic output. Diff
// compares the two values of a matched key: numeric readings get a
// difference and a percent deviation (with +Inf as the sentinel when the
// second file's value is zero), anything else falls back to raw string
// equality. Both operations are pure; they never mutate their inputs.
package compare
