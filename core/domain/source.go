// ABOUTME: FeedSource domain model represents a configured RSS/Atom endpoint
// ABOUTME: Carries the optional declarative per-source category filter

package domain

import "strings"

// FeedSource identifies a feed origin. Sources are supplied by configuration
// and never mutated by the pipeline.
type FeedSource struct {
	// ID is the stable source identifier
	ID string `json:"id"`

	// Name is the human-readable source name
	Name string `json:"name"`

	// URL is the RSS/Atom endpoint
	URL string `json:"url"`

	// RequireCategory, when set, keeps only items bearing a category that
	// contains this value (case-insensitive). Empty means no filter.
	RequireCategory string `json:"requireCategory,omitempty"`
}

// Accepts reports whether an item with the given categories passes the
// source's inclusion filter.
func (s FeedSource) Accepts(categories []string) bool {
	if s.RequireCategory == "" {
		return true
	}
	want := strings.ToLower(s.RequireCategory)
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c), want) {
			return true
		}
	}
	return false
}
