// ABOUTME: NewsItem domain model represents a single aggregated newswire entry
// ABOUTME: Provides the deterministic item identity used for stable output ids

package domain

import (
	"crypto/sha1"
	"encoding/hex"
)

// NewsItem is the canonical record flowing through the pipeline. It is built
// once during ingestion and mutated at most once by enrichment, which may
// only touch Image, Published and PublishedTs.
type NewsItem struct {
	// ID is a deterministic hash of (SourceID, Link)
	ID string `json:"id"`

	// Title is the item's headline
	Title string `json:"title"`

	// Link is the canonical (normalized, entity-decoded) article URL.
	// Items without a resolvable link never enter the model.
	Link string `json:"link"`

	// Published is the original date string as found in the feed or page
	Published string `json:"published"`

	// PublishedTs is epoch milliseconds, 0 exactly when no usable date
	// was found. Never negative.
	PublishedTs int64 `json:"publishedTs"`

	// SourceID identifies the feed the item came from
	SourceID string `json:"sourceId"`

	// SourceName is the human-readable feed name
	SourceName string `json:"sourceName"`

	// Categories holds up to 12 feed categories in source order
	Categories []string `json:"categories"`

	// Image is an absolute image URL or empty string
	Image string `json:"image"`

	// Excerpt is a plain-text summary of at most 240 characters
	Excerpt string `json:"excerpt"`
}

// ItemID derives the stable item id from the source id and the canonical
// link. Re-running the pipeline on identical input yields identical ids.
func ItemID(sourceID, canonicalLink string) string {
	sum := sha1.Sum([]byte(sourceID + "\n" + canonicalLink))
	return hex.EncodeToString(sum[:])[:16]
}
