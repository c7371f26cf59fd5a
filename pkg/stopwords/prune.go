package stopwords

import "github.com/seleznevm/topkwords/pkg/wordcount"

// Prune returns the entries whose words are not stopwords, preserving the
// input order. Counts are never modified; pruning only narrows what the
// report considers.
func Prune(entries []wordcount.Entry) []wordcount.Entry {
	kept := make([]wordcount.Entry, 0, len(entries))
	for _, entry := range entries {
		if !IsStopword(entry.Word) {
			kept = append(kept, entry)
		}
	}
	return kept
}
