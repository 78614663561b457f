// ABOUTME: Output payload models for the generated newswire document
// ABOUTME: IngestError records a per-feed failure without aborting the run

package domain

// IngestError describes one feed that failed to fetch or parse entirely.
// It is embedded in the payload rather than raised.
type IngestError struct {
	SourceID   string `json:"sourceId"`
	SourceName string `json:"sourceName"`
	URL        string `json:"url"`
	Error      string `json:"error"`
}

// OutputPayload is the sole externally visible artifact of a pipeline run.
type OutputPayload struct {
	// GeneratedAt is an ISO-8601 UTC timestamp of the run
	GeneratedAt string `json:"generatedAt"`

	// Total equals len(Items)
	Total int `json:"total"`

	// Sources is the configured feed list, echoed verbatim
	Sources []FeedSource `json:"sources"`

	// Errors lists feeds that contributed zero items
	Errors []IngestError `json:"errors"`

	// Items is the deduplicated, ranked, truncated newswire
	Items []NewsItem `json:"items"`
}
