package compare

import "sort"

// Reconciliation partitions the keys of two files by presence. All three
// slices are lexicographically sorted; because composite keys embed their
// columns with the '|' separator, sorting by the raw key string orders by
// first key column, then second, and so on.
type Reconciliation struct {
	// Matched holds keys present in both files.
	Matched []string
	// MissingInSecond holds keys present only in the first file.
	MissingInSecond []string
	// MissingInFirst holds keys present only in the second file.
	MissingInFirst []string
}

// Reconcile computes the matched and missing key lists for two key sets.
// It only reads the sets and is safe to call with results that are shared
// with other readers.
func Reconcile(first, second map[string]struct{}) Reconciliation {
	rec := Reconciliation{
		Matched:         make([]string, 0),
		MissingInSecond: make([]string, 0),
		MissingInFirst:  make([]string, 0),
	}

	for key := range first {
		if _, ok := second[key]; ok {
			rec.Matched = append(rec.Matched, key)
		} else {
			rec.MissingInSecond = append(rec.MissingInSecond, key)
		}
	}
	for key := range second {
		if _, ok := first[key]; !ok {
			rec.MissingInFirst = append(rec.MissingInFirst, key)
		}
	}

	sort.Strings(rec.Matched)
	sort.Strings(rec.MissingInSecond)
	sort.Strings(rec.MissingInFirst)
	return rec
}
