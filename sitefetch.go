// Package sitefetch downloads a fixed list of web resources using several
// execution strategies: sequential, parallel, and suspendable (futures),
// with optional progress reporting and cooperative cancellation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, rod/, goquery/, slog/).
package sitefetch

// DefaultURLs returns the resources downloaded when no URLs are given.
func DefaultURLs() []string {
	return []string{
		"https://www.yahoo.com",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.cnn.com",
		"https://www.stackoverflow.com",
	}
}
