// ABOUTME: Enrichment engine scrapes article pages for missing image/date metadata
// ABOUTME: Runs under a bounded-concurrency pool; every failure degrades to a no-op

package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/albash-builds/dj-newswire/core/domain"
	"github.com/albash-builds/dj-newswire/core/extract"
	"github.com/albash-builds/dj-newswire/core/ingest"
	"github.com/albash-builds/dj-newswire/core/interfaces"
	"github.com/albash-builds/dj-newswire/pkg/utils/timex"
	"github.com/albash-builds/dj-newswire/pkg/utils/urls"
)

const (
	pageAccept = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"

	metaCachePrefix = "pagemeta:"
	metaCacheTTL    = 24 * time.Hour
)

// Meta tag priority chains, first non-empty content wins.
var (
	imageMetaKeys = []string{"og:image", "og:image:url", "twitter:image", "twitter:image:src"}
	dateMetaKeys  = []string{"article:published_time", "og:updated_time", "article:modified_time"}
)

// Config holds enrichment tunables.
type Config struct {
	// Concurrency is the global in-flight fetch ceiling
	Concurrency int

	// PageTimeout bounds each article-page fetch
	PageTimeout time.Duration
}

// Service scrapes article pages to fill in missing item metadata
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new enrichment service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = 8 * time.Second
	}
	return &Service{deps: deps, cfg: cfg}
}

// pageMeta is what a single article page can contribute.
type pageMeta struct {
	Image     string `json:"image"`
	Published string `json:"published"`
}

// Needs reports whether an item is missing metadata worth scraping for.
func Needs(item domain.NewsItem) bool {
	if item.Image == "" || extract.IsJunkImage(item.Image) {
		return true
	}
	return item.PublishedTs == 0
}

// EnrichBatch enriches the given items under the configured concurrency
// ceiling and returns a new slice. Items that need nothing pass through
// without a network call. Each task owns exactly one slice index, so no
// locking is needed; the WaitGroup is the join point.
func (s *Service) EnrichBatch(ctx context.Context, items []domain.NewsItem) []domain.NewsItem {
	out := make([]domain.NewsItem, len(items))
	copy(out, items)

	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup

	for i := range out {
		if !Needs(out[i]) {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out[i] = s.EnrichItem(ctx, out[i])
		}(i)
	}

	wg.Wait()
	return out
}

// EnrichItem returns the item with Image and/or Published/PublishedTs filled
// in from its article page when possible. Identity fields are never touched,
// and any failure returns the item unchanged.
func (s *Service) EnrichItem(ctx context.Context, item domain.NewsItem) domain.NewsItem {
	if !Needs(item) {
		return item
	}

	meta := s.pageMeta(ctx, item.Link)
	if meta == nil {
		return item
	}

	if (item.Image == "" || extract.IsJunkImage(item.Image)) && meta.Image != "" {
		img := urls.Absolutize(meta.Image, item.Link)
		if img != "" && !extract.IsJunkImage(img) {
			item.Image = img
		}
	}

	if item.PublishedTs == 0 && meta.Published != "" {
		if ms := timex.ToMillis(meta.Published); ms > 0 {
			item.Published = meta.Published
			item.PublishedTs = ms
		}
	}

	return item
}

// pageMeta fetches page metadata through the memo cache.
func (s *Service) pageMeta(ctx context.Context, pageURL string) *pageMeta {
	key := metaCachePrefix + pageURL

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, key); err == nil && data != nil {
			var meta pageMeta
			if json.Unmarshal(data, &meta) == nil {
				return &meta
			}
		}
	}

	meta := s.fetchMeta(ctx, pageURL)

	if meta != nil && s.deps.Cache != nil {
		if data, err := json.Marshal(meta); err == nil {
			_ = s.deps.Cache.Set(ctx, key, data, metaCacheTTL)
		}
	}

	return meta
}

// fetchMeta fetches the article page under its own deadline and extracts the
// meta-tag chains. Any failure yields nil.
func (s *Service) fetchMeta(ctx context.Context, pageURL string) *pageMeta {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.PageTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(fetchCtx, pageURL, map[string]string{
		"User-Agent": ingest.UserAgent,
		"Accept":     pageAccept,
	})
	if err != nil {
		s.debug("Article fetch failed", pageURL, err.Error())
		return nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.debug("Article fetch non-success", pageURL, fmt.Sprintf("status %d", resp.StatusCode()))
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		s.debug("Article parse failed", pageURL, err.Error())
		return nil
	}

	return &pageMeta{
		Image:     firstMetaContent(doc, imageMetaKeys),
		Published: firstMetaContent(doc, dateMetaKeys),
	}
}

// firstMetaContent walks a priority chain of meta keys, accepting either the
// property or the name attribute form.
func firstMetaContent(doc *goquery.Document, keys []string) string {
	for _, key := range keys {
		sel := fmt.Sprintf(`meta[property=%q], meta[name=%q]`, key, key)
		content := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", ""))
		if content != "" {
			return content
		}
	}
	return ""
}

func (s *Service) debug(msg, url, detail string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, map[string]interface{}{
			"url":   url,
			"error": detail,
		})
	}
}
