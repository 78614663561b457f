// ABOUTME: Pipeline orchestrator sequences ingest, rank, enrich, re-rank, truncate
// ABOUTME: Assembles the final output payload including the per-feed error list

package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/albash-builds/dj-newswire/core/domain"
	"github.com/albash-builds/dj-newswire/core/enrich"
	"github.com/albash-builds/dj-newswire/core/ingest"
	"github.com/albash-builds/dj-newswire/core/interfaces"
	"github.com/albash-builds/dj-newswire/core/rank"
)

// Config holds pipeline tunables.
type Config struct {
	// MaxItems caps the final output size
	MaxItems int

	// EnrichLimit bounds the enrichment-eligible head of the ranking
	EnrichLimit int

	// EnrichEnabled toggles the enrichment stage; disabled is the fast mode
	EnrichEnabled bool

	// IngestConcurrency bounds simultaneous feed fetches
	IngestConcurrency int
}

// Pipeline wires the aggregation stages together
type Pipeline struct {
	deps     interfaces.Dependencies
	cfg      Config
	ingestor *ingest.Service
	enricher *enrich.Service
}

// New creates a pipeline. The enricher may be nil when enrichment is off.
func New(deps interfaces.Dependencies, cfg Config, ingestor *ingest.Service, enricher *enrich.Service) *Pipeline {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 120
	}
	if cfg.EnrichLimit <= 0 {
		cfg.EnrichLimit = 40
	}
	if cfg.IngestConcurrency <= 0 {
		cfg.IngestConcurrency = 5
	}
	return &Pipeline{deps: deps, cfg: cfg, ingestor: ingestor, enricher: enricher}
}

// Run executes one aggregation pass over the given sources and returns the
// payload to persist. Feed failures are embedded in the payload; Run itself
// never fails.
func (p *Pipeline) Run(ctx context.Context, sources []domain.FeedSource) *domain.OutputPayload {
	type result struct {
		items []domain.NewsItem
		err   *domain.IngestError
	}

	// Results land in source order so duplicate-winner selection stays
	// deterministic even though fetches interleave.
	results := make([]result, len(sources))
	sem := make(chan struct{}, p.cfg.IngestConcurrency)
	var wg sync.WaitGroup

	for i, source := range sources {
		wg.Add(1)
		go func(i int, source domain.FeedSource) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			items, ingErr := p.ingestor.Ingest(ctx, source)
			results[i] = result{items: items, err: ingErr}
		}(i, source)
	}
	wg.Wait()

	merged := make([]domain.NewsItem, 0, 64)
	errs := make([]domain.IngestError, 0)
	for _, r := range results {
		merged = append(merged, r.items...)
		if r.err != nil {
			errs = append(errs, *r.err)
		}
	}

	ranked := rank.Rank(merged)

	if p.cfg.EnrichEnabled && p.enricher != nil {
		head := ranked
		if len(head) > p.cfg.EnrichLimit {
			head = head[:p.cfg.EnrichLimit]
		}
		enriched := p.enricher.EnrichBatch(ctx, head)
		// Re-rank so freshly discovered dates take effect.
		ranked = rank.Rank(append(enriched, ranked[len(enriched):]...))
	}

	if len(ranked) > p.cfg.MaxItems {
		ranked = ranked[:p.cfg.MaxItems]
	}

	if p.deps.Logger != nil {
		p.deps.Logger.Info("Pipeline run complete", map[string]interface{}{
			"sources": len(sources),
			"items":   len(ranked),
			"errors":  len(errs),
		})
	}

	return &domain.OutputPayload{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Total:       len(ranked),
		Sources:     sources,
		Errors:      errs,
		Items:       ranked,
	}
}
