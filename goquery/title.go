// Package goquery provides HTML inspection built on github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitefetch"
)

// Ensure TitleExtractor implements sitefetch.TitleExtractor at compile time.
var _ sitefetch.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor finds a page title in HTML. It prefers the <title> element,
// then the Open Graph title, then the first <h1>.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the page title, or an empty string if none is found.
func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", sitefetch.Errorf(sitefetch.EINVALID, "failed to parse HTML: %v", err)
	}

	if title := normalize(doc.Find("head title").First().Text()); title != "" {
		return title, nil
	}

	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := normalize(content); title != "" {
			return title, nil
		}
	}

	return normalize(doc.Find("h1").First().Text()), nil
}

// normalize collapses runs of whitespace into single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
