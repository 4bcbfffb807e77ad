// Package parse provides a parallel chunked parser for whitespace-delimited
// report files (power report dialect).
//
// A file is split into byte ranges aligned to line boundaries, one worker
// goroutine parses each range into a private key/value map, and the results
// are merged after all workers complete. Because the ranges are disjoint and
// every worker writes only to its own containers, the hot parsing loop needs
// no synchronization at all; the single join-and-merge step is the only
// serialization point.
//
// # Input dialect
//
// Lines are arbitrary runs of whitespace-separated tokens. Blank lines,
// comment lines starting with '#', and lines whose first token is one of the
// fixed metadata keywords (VERSION, CREATION, UNITS, ...) are skipped. Rows
// with too few tokens for the configured columns are silently dropped; they
// are data-quality noise, not errors.
//
// # Usage
//
//	res, err := parse.File(ctx, "power.rpt", parse.Options{
//	    Columns: parse.Columns{Key: []int{0, 1}, Value: 3},
//	})
//
// A row's instance key is built by joining the key-column tokens with '|'.
// If the same key occurs on several rows, the later row wins.
package parse
