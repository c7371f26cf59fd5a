package models

import "fmt"

// ScanMode selects how a file's bytes become countable text.
type ScanMode int

const (
	// ScanText counts the raw bytes as they are.
	ScanText ScanMode = iota
	ScanHTML                 // parse as HTML, count the visible text
	ScanArticle              // distill the main article content, then count
)

// ParseScanMode maps a --mode flag value onto a ScanMode.
func ParseScanMode(s string) (ScanMode, error) {
	switch s {
	case "", "text":
		return ScanText, nil
	case "html":
		return ScanHTML, nil
	case "article":
		return ScanArticle, nil
	default:
		return ScanText, fmt.Errorf("unknown mode %q (want text, html or article)", s)
	}
}

// String returns the flag spelling of the mode.
func (m ScanMode) String() string {
	switch m {
	case ScanHTML:
		return "html"
	case ScanArticle:
		return "article"
	default:
		return "text"
	}
}
