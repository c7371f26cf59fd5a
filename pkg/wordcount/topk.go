package wordcount

import (
	"fmt"
	"io"
	"sort"
)

// TopK returns the k most frequent entries ordered by count descending.
// Equal counts order by word ascending, which keeps the report stable
// across runs. When fewer than k entries exist the whole set is returned,
// so callers never have to check the map size first.
func TopK(entries []Entry, k int) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	limit := k
	if len(ranked) < limit {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}

	return ranked[:limit]
}

// WriteReport prints one line per entry: the count right-aligned to four
// columns, a single space, then the word.
func WriteReport(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%4d %s\n", entry.Count, entry.Word); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	return nil
}
