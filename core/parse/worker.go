package parse

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// workerBufSize is the read buffer per chunk worker.
const workerBufSize = 256 * 1024

// chunkResult carries one worker's private accumulation back to the
// orchestrator. Nothing else ever touches these maps until the merge.
type chunkResult struct {
	values map[string]Value
	keys   map[string]struct{}
	err    error
}

// parseChunk reads the lines of one byte range and classifies them into a
// local map and key set. The worker opens its own read-only handle, seeks to
// the chunk start, and stops as soon as its read position reaches the chunk
// end, so neighboring workers never see the same line twice.
func parseChunk(path string, c Chunk, cols Columns) chunkResult {
	f, err := os.Open(path)
	if err != nil {
		return chunkResult{err: err}
	}
	defer f.Close()

	if _, err := f.Seek(c.Start, io.SeekStart); err != nil {
		return chunkResult{err: err}
	}

	r := bufio.NewReaderSize(f, workerBufSize)
	values := make(map[string]Value)
	keys := make(map[string]struct{})

	pos := c.Start
	for pos < c.End {
		line, err := r.ReadString('\n')
		pos += int64(len(line))

		if len(line) > 0 {
			if key, val, ok := Classify(strings.TrimRight(line, "\r\n"), cols); ok {
				values[key] = val
				keys[key] = struct{}{}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return chunkResult{err: err}
		}
	}

	return chunkResult{values: values, keys: keys}
}
