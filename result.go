package sitefetch

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Result is the downloaded content of a single URL.
// A Result is immutable once constructed.
type Result struct {
	URL     string
	Content string
	Hash    string // xxhash of Content
}

// NewResult returns a Result for url with its content hash computed.
func NewResult(url, content string) *Result {
	return &Result{
		URL:     url,
		Content: content,
		Hash:    ComputeHash(content),
	}
}

// Length returns the number of characters in Content.
func (r *Result) Length() int {
	return utf8.RuneCountInString(r.Content)
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Digest returns a hash over the URL and content hash of every result.
// It ignores order, so runs that fetched the same content have equal digests.
func Digest(results []*Result) string {
	keys := make([]string, len(results))
	for i, r := range results {
		keys[i] = r.URL + "=" + r.Hash
	}
	slices.Sort(keys)
	return ComputeHash(strings.Join(keys, "\n"))
}
