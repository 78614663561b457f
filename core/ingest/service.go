// ABOUTME: Feed ingestor fetches and parses one feed into normalized news items
// ABOUTME: Failures are isolated per feed and surfaced as IngestError values

package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/albash-builds/dj-newswire/core/domain"
	"github.com/albash-builds/dj-newswire/core/extract"
	"github.com/albash-builds/dj-newswire/core/interfaces"
	"github.com/albash-builds/dj-newswire/pkg/utils/timex"
	"github.com/albash-builds/dj-newswire/pkg/utils/urls"
)

const (
	// UserAgent identifies the aggregator on outbound requests
	UserAgent = "dj-newswire/1.0 (+https://github.com/albash-builds/dj-newswire)"

	feedAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"

	// bodySnippetLen bounds the response-body excerpt embedded in errors
	bodySnippetLen = 160
)

// Service handles feed ingestion
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new ingest service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Ingest fetches and parses one feed source. On any failure it returns zero
// items and a single IngestError; it never returns a Go error, so one bad
// feed cannot short-circuit the others.
func (s *Service) Ingest(ctx context.Context, source domain.FeedSource) ([]domain.NewsItem, *domain.IngestError) {
	resp, err := s.deps.HTTPClient.Get(ctx, source.URL, map[string]string{
		"User-Agent": UserAgent,
		"Accept":     feedAccept,
	})
	if err != nil {
		return nil, s.failure(source, fmt.Errorf("fetch feed: %w", err))
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		snippet := readSnippet(resp.Body())
		return nil, s.failure(source, fmt.Errorf("feed returned status %d: %s", resp.StatusCode(), snippet))
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil {
		return nil, s.failure(source, fmt.Errorf("parse feed: %w", err))
	}

	items := make([]domain.NewsItem, 0, len(parsed.Items))
	for _, raw := range parsed.Items {
		if raw == nil {
			continue
		}
		if item, ok := buildItem(source, raw); ok {
			items = append(items, item)
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Ingested feed", map[string]interface{}{
			"source": source.ID,
			"items":  len(items),
		})
	}

	return items, nil
}

// buildItem converts a parsed feed item into the canonical record. Items
// with no resolvable link, and items rejected by the source's category
// filter, are dropped.
func buildItem(source domain.FeedSource, raw *gofeed.Item) (domain.NewsItem, bool) {
	link := raw.Link
	if link == "" {
		link = raw.GUID
	}
	link = urls.Normalize(link)
	if link == "" {
		return domain.NewsItem{}, false
	}

	categories := extract.PickCategories(raw)
	if !source.Accepts(categories) {
		return domain.NewsItem{}, false
	}

	image := extract.PickImage(raw)
	if extract.IsJunkImage(image) {
		image = ""
	}

	published, ts := publishedFields(raw)

	return domain.NewsItem{
		ID:          domain.ItemID(source.ID, link),
		Title:       strings.TrimSpace(raw.Title),
		Link:        link,
		Published:   published,
		PublishedTs: ts,
		SourceID:    source.ID,
		SourceName:  source.Name,
		Categories:  categories,
		Image:       image,
		Excerpt:     extract.PickExcerpt(raw),
	}, true
}

// publishedFields resolves the item date, preferring the published fields
// over the updated ones.
func publishedFields(raw *gofeed.Item) (string, int64) {
	if raw.Published != "" || raw.PublishedParsed != nil {
		return dateFields(raw.Published, raw.PublishedParsed)
	}
	return dateFields(raw.Updated, raw.UpdatedParsed)
}

func dateFields(str string, parsed *time.Time) (string, int64) {
	if parsed != nil {
		ms := parsed.UnixMilli()
		if ms < 0 {
			ms = 0
		}
		if str == "" {
			str = parsed.Format(time.RFC3339)
		}
		return str, ms
	}
	return str, timex.ToMillis(str)
}

// failure records the feed-level error and wraps it for the payload.
func (s *Service) failure(source domain.FeedSource, err error) *domain.IngestError {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to ingest feed", map[string]interface{}{
			"source": source.ID,
			"url":    source.URL,
			"error":  err.Error(),
		})
	}
	return &domain.IngestError{
		SourceID:   source.ID,
		SourceName: source.Name,
		URL:        source.URL,
		Error:      err.Error(),
	}
}

// readSnippet reads a bounded, whitespace-normalized diagnostic excerpt.
func readSnippet(body io.Reader) string {
	buf, _ := io.ReadAll(io.LimitReader(body, bodySnippetLen))
	return strings.Join(strings.Fields(string(buf)), " ")
}
