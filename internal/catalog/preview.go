// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plantview/plantview-cli/internal/logging"
	"github.com/plantview/plantview-cli/internal/models"
)

const (
	DefaultPreviewLimit    = 60
	DefaultPreviewMaxPages = 10
)

// PageFetcher fetches one page of the plant listing.
type PageFetcher interface {
	ListPlants(ctx context.Context, page int, family string) (*models.PageResponse, error)
}

// PreviewLoader samples the unfiltered listing to build an approximate
// category list for the filter picker. Its records never reach the main list.
type PreviewLoader struct {
	fetcher  PageFetcher
	limit    int
	maxPages int
	logger   zerolog.Logger
}

// NewPreviewLoader creates a loader that stops after limit records or
// maxPages pages, whichever comes first. Non-positive values use the defaults.
func NewPreviewLoader(fetcher PageFetcher, limit, maxPages int) *PreviewLoader {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if maxPages <= 0 {
		maxPages = DefaultPreviewMaxPages
	}
	return &PreviewLoader{
		fetcher:  fetcher,
		limit:    limit,
		maxPages: maxPages,
		logger:   logging.NewLogger("preview"),
	}
}

// Load walks pages 1, 2, ... while pages remain and fewer than limit
// records have been seen, then returns AllCategory followed by the
// derived families. Any failed page aborts the preview; partial results
// are discarded.
func (l *PreviewLoader) Load(ctx context.Context) ([]string, error) {
	var sampled []models.PlantRecord
	totalPages := 1

	for page := 1; page <= totalPages && page <= l.maxPages && len(sampled) < l.limit; page++ {
		resp, err := l.fetcher.ListPlants(ctx, page, "")
		if err != nil {
			return nil, fmt.Errorf("category preview page %d: %w", page, err)
		}

		sampled = append(sampled, resp.Records()...)
		if total := resp.TotalPages(); total > 0 {
			totalPages = total
		}
	}

	categories := DeriveCategories(sampled)
	l.logger.Debug().
		Int("records", len(sampled)).
		Int("categories", len(categories)).
		Msg("category preview loaded")

	return append([]string{AllCategory}, categories...), nil
}
