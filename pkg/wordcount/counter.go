// Package wordcount implements the counting pipeline: tokenizing streams
// into words, merging per-file counts into a shared accumulator, and
// selecting the most frequent entries for the report.
package wordcount

import (
	"bufio"
	"io"
)

// maxTokenSize caps a single whitespace-delimited token at 1 MiB. Real words
// are tiny; an unbroken run longer than this surfaces as a read error.
const maxTokenSize = 1 << 20

// Count tokenizes r into whitespace-delimited words and returns how often
// each occurs. Tokens are folded with FoldASCII before counting, so map keys
// are ASCII-lowercase. Punctuation is kept as part of the token: "dog," and
// "dog" count separately.
//
// A read error is returned together with the counts gathered up to that
// point, so callers can keep the partial tally.
func Count(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		counts[FoldASCII(scanner.Bytes())]++
	}

	return counts, scanner.Err()
}

// FoldASCII lowercases the ASCII letters of tok and returns the result as a
// string. Every byte outside 'A'..'Z', including non-ASCII bytes, passes
// through unchanged.
func FoldASCII(tok []byte) string {
	folded := make([]byte, len(tok))
	for i, b := range tok {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		folded[i] = b
	}
	return string(folded)
}
