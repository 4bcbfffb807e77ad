package parse

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrNoData reports a file that is empty or could not be opened. Callers are
// expected to degrade to an empty result and keep the run going; the other
// file may still be valid.
var ErrNoData = errors.New("no parseable data: file is empty or unreadable")

// Result is the merged outcome of parsing one file: every instance key seen
// and the value recorded for it. Once returned it is read-only.
type Result struct {
	// Values maps instance key to the value of its last occurrence.
	Values map[string]Value
	// Keys is the set of all instance keys in the file.
	Keys map[string]struct{}
}

// NewResult returns an empty parse result.
func NewResult() *Result {
	return &Result{
		Values: make(map[string]Value),
		Keys:   make(map[string]struct{}),
	}
}

// Options configures a file parse.
type Options struct {
	// Columns designates the key and value columns.
	Columns Columns
	// Workers is the number of parallel chunk workers. Zero or negative
	// selects runtime.NumCPU().
	Workers int
}

// File parses the file at path into a Result using one goroutine per chunk.
//
// The chunks are disjoint line-aligned byte ranges, so the workers share
// nothing while parsing; their private maps are merged single-threaded after
// all of them finish. Parsing with one worker and with many yields the same
// result for any file without duplicate keys. If a worker fails mid-chunk
// the whole parse fails for this file; there are no partial results.
//
// Returns ErrNoData when the file is empty or unreadable.
func File(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	chunks := Boundaries(path, workers)
	if len(chunks) == 0 {
		return nil, ErrNoData
	}

	results := make([]chunkResult, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, c := range chunks {
		go func(i int, c Chunk) {
			defer wg.Done()
			results[i] = parseChunk(path, c, opts.Columns)
		}(i, c)
	}
	wg.Wait()

	merged := NewResult()
	for _, cr := range results {
		if cr.err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, cr.err)
		}
		for k, v := range cr.values {
			merged.Values[k] = v
		}
		for k := range cr.keys {
			merged.Keys[k] = struct{}{}
		}
	}
	return merged, nil
}
