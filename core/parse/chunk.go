package parse

import (
	"bufio"
	"io"
	"os"
)

// Chunk is a byte range [Start, End) into a file. Boundaries produced by
// this package are aligned so that no line straddles two chunks.
type Chunk struct {
	Start int64
	End   int64
}

// Boundaries divides the file at path into at most n contiguous,
// line-aligned byte ranges that together cover the whole file exactly once.
// Each naive split point is advanced to the start of the next line so a
// worker never begins mid-line; the last chunk always ends at the file size.
//
// It returns nil when the file cannot be opened or is empty; the caller
// treats that as "nothing to parse". Requesting more chunks than the file
// has lines collapses to fewer chunks.
func Boundaries(path string, n int) []Chunk {
	if n < 1 {
		n = 1
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return nil
	}
	size := info.Size()

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	span := size / int64(n)
	if span < 1 {
		span = 1
	}

	offsets := []int64{0}
	for i := 1; i < n; i++ {
		pos := span * int64(i)
		if pos >= size {
			break
		}
		if pos <= offsets[len(offsets)-1] {
			continue
		}
		next, err := nextLineStart(f, pos)
		if err != nil {
			return nil
		}
		if next >= size {
			// Ran past end of file looking for a terminator; the final
			// chunk below covers the remainder.
			break
		}
		if next <= offsets[len(offsets)-1] {
			continue
		}
		offsets = append(offsets, next)
	}
	offsets = append(offsets, size)

	chunks := make([]Chunk, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		if offsets[i] >= offsets[i+1] {
			continue
		}
		chunks = append(chunks, Chunk{Start: offsets[i], End: offsets[i+1]})
	}
	return chunks
}

// nextLineStart returns the offset just past the first line terminator at or
// after pos, or the file size when no terminator follows.
func nextLineStart(f *os.File, pos int64) (int64, error) {
	if _, err := f.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	r := bufio.NewReader(f)
	line, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}
	return pos + int64(len(line)), nil
}
