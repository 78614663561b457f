// ABOUTME: Command line entrypoint for the dj-newswire aggregator
// ABOUTME: Wires config, dependencies and pipeline; writes the payload or serves it

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/albash-builds/dj-newswire/core/domain"
	"github.com/albash-builds/dj-newswire/core/enrich"
	"github.com/albash-builds/dj-newswire/core/ingest"
	"github.com/albash-builds/dj-newswire/core/interfaces"
	"github.com/albash-builds/dj-newswire/core/pipeline"
	memorycache "github.com/albash-builds/dj-newswire/infrastructure/cache/memory"
	httpstd "github.com/albash-builds/dj-newswire/infrastructure/http/standard"
	loggerstd "github.com/albash-builds/dj-newswire/infrastructure/logger/standard"
	"github.com/albash-builds/dj-newswire/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "newswire:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	sourcesPath := flag.String("sources", cfg.SourcesFile, "path to the feed source list")
	outputPath := flag.String("output", cfg.OutputFile, "path to write the generated payload")
	enrichOn := flag.Bool("enrich", cfg.EnrichEnabled, "scrape article pages for missing metadata")
	maxItems := flag.Int("max-items", cfg.MaxItems, "maximum number of items in the output")
	serve := flag.Bool("serve", false, "serve the payload over HTTP and refresh on a schedule")
	flag.Parse()

	cfg.SourcesFile = *sourcesPath
	cfg.OutputFile = *outputPath
	cfg.EnrichEnabled = *enrichOn
	cfg.MaxItems = *maxItems

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := loggerstd.NewLogrusLogger(cfg.LogLevel)
	deps := interfaces.Dependencies{
		Cache:      memorycache.NewMemoryCache(24 * time.Hour),
		HTTPClient: httpstd.NewStandardHTTPClient(cfg.FeedTimeout),
		Logger:     logger,
	}

	ingestor := ingest.NewService(deps)
	enricher := enrich.NewService(deps, enrich.Config{
		Concurrency: cfg.EnrichConcurrency,
		PageTimeout: cfg.PageTimeout,
	})
	pipe := pipeline.New(deps, pipeline.Config{
		MaxItems:      cfg.MaxItems,
		EnrichLimit:   cfg.EnrichLimit,
		EnrichEnabled: cfg.EnrichEnabled,
	}, ingestor, enricher)

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		return err
	}

	if *serve {
		return serveNewswire(cfg, logger, pipe, sources)
	}

	payload := pipe.Run(context.Background(), sources)
	if err := writePayload(cfg.OutputFile, payload); err != nil {
		return err
	}

	logger.Info("Newswire written", map[string]interface{}{
		"output": cfg.OutputFile,
		"items":  payload.Total,
		"errors": len(payload.Errors),
	})
	return nil
}

// writePayload serializes the payload as pretty-printed UTF-8 JSON.
func writePayload(path string, payload *domain.OutputPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
