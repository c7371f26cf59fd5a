// Package extract converts HTML inputs into plain text so the counting
// pipeline can treat them like any other stream.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// VisibleText parses r as HTML and returns the visible text with script,
// style and noscript subtrees removed. Every text node contributes its own
// whitespace-separated run, so words never merge across tag boundaries.
func VisibleText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	doc.Find("*").Contents().Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			b.WriteString(s.Text())
			b.WriteByte(' ')
		}
	})
	return strings.TrimSpace(b.String()), nil
}

// ArticleText runs readability over r and returns the plain text of the main
// content, dropping navigation and boilerplate. name identifies the source
// in the synthetic URL readability expects; a local file path works fine.
func ArticleText(r io.Reader, name string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: name}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(r, pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article from %s: %w", name, err)
	}

	return article.TextContent, nil
}
