// ABOUTME: Feed source list loader for the static JSON configuration file
// ABOUTME: An unreadable or invalid sources file is a fatal startup error

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/albash-builds/dj-newswire/core/domain"
)

// LoadSources reads the feed-source list from a JSON file. Unlike feed
// fetches, a failure here is fatal to the run.
func LoadSources(path string) ([]domain.FeedSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var sources []domain.FeedSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	if len(sources) == 0 {
		return nil, errors.New("sources file contains no feeds")
	}

	for i, s := range sources {
		if s.ID == "" || s.URL == "" {
			return nil, fmt.Errorf("source at index %d is missing id or url", i)
		}
	}

	return sources, nil
}
