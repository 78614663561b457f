// ABOUTME: HTTP serve mode exposing the latest generated newswire payload
// ABOUTME: A cron schedule re-runs the pipeline and swaps the served document

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/albash-builds/dj-newswire/core/domain"
	"github.com/albash-builds/dj-newswire/core/interfaces"
	"github.com/albash-builds/dj-newswire/core/pipeline"
	"github.com/albash-builds/dj-newswire/pkg/config"
)

func serveNewswire(cfg *config.Config, logger interfaces.Logger, pipe *pipeline.Pipeline, sources []domain.FeedSource) error {
	var mu sync.RWMutex
	var latest []byte

	refresh := func() {
		payload := pipe.Run(context.Background(), sources)
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			logger.Error("Failed to encode payload", map[string]interface{}{"error": err.Error()})
			return
		}
		if err := writePayload(cfg.OutputFile, payload); err != nil {
			logger.Error("Failed to write output", map[string]interface{}{"error": err.Error()})
		}
		mu.Lock()
		latest = data
		mu.Unlock()
	}

	refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RefreshCron, refresh); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", cfg.RefreshCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := chi.NewRouter()
	router.Get("/newswire", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		data := latest
		mu.RUnlock()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	handler := cors.Default().Handler(router)

	logger.Info("Serving newswire", map[string]interface{}{
		"addr":    cfg.ServeAddr,
		"refresh": cfg.RefreshCron,
	})
	return http.ListenAndServe(cfg.ServeAddr, handler)
}
