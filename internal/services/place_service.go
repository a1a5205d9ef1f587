package services

import (
	"context"
	"log/slog"

	"github.com/visitpazar/api/internal/models"
	"github.com/visitpazar/api/internal/store"
	"github.com/visitpazar/api/internal/wiki"
)

// DocumentStore is the two-operation persistence contract every service
// depends on. out must be a pointer to a slice of the target record type.
type DocumentStore interface {
	Create(ctx context.Context, collection string, doc any) (string, error)
	Query(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error
}

// SummaryFetcher yields a best-effort page summary; it never fails.
type SummaryFetcher interface {
	Summary(ctx context.Context, title string) wiki.Summary
}

const (
	maxPlaceResults       = 100
	maxRecommendedResults = 50

	// Enrichment keeps at most this many characters of the fetched extract.
	maxExtractChars = 800
)

// PlaceService validates and enriches place records before persisting them.
type PlaceService struct {
	store  DocumentStore
	wiki   SummaryFetcher
	logger *slog.Logger
}

func NewPlaceService(store DocumentStore, fetcher SummaryFetcher, logger *slog.Logger) *PlaceService {
	return &PlaceService{
		store:  store,
		wiki:   fetcher,
		logger: logger,
	}
}

// Create validates the incoming place, fills missing image/description fields
// from the summary fetcher, re-validates and persists. Enrichment is strictly
// best effort: a failed or empty lookup persists the payload unchanged and
// never blocks the creation.
func (ps *PlaceService) Create(ctx context.Context, place models.Place) (string, error) {
	place.Normalize()
	if err := models.CheckSchema(place); err != nil {
		return "", err
	}

	place = ps.enrich(ctx, place)

	// Guard against any enrichment-introduced inconsistency before persisting.
	if err := models.CheckSchema(place); err != nil {
		return "", err
	}

	return ps.store.Create(ctx, store.PlaceCollection, place)
}

func (ps *PlaceService) enrich(ctx context.Context, place models.Place) models.Place {
	if len(place.Images) > 0 || place.Name == "" {
		return place
	}

	summary := ps.wiki.Summary(ctx, place.Name)

	var images []string
	if summary.Thumbnail != nil {
		images = []string{*summary.Thumbnail}
	}
	var description string
	if place.Description == "" && summary.Extract != nil {
		description = truncateChars(*summary.Extract, maxExtractChars)
	}
	if images == nil && description == "" {
		return place
	}

	ps.logger.Debug("enriched place from wiki summary",
		"name", place.Name,
		"image_added", images != nil,
		"description_added", description != "",
	)
	return place.Enriched(images, description)
}

// List returns places matching the optional type and recommended filters.
func (ps *PlaceService) List(ctx context.Context, placeType string, recommended *bool) ([]models.Place, error) {
	filter := map[string]any{}
	if placeType != "" {
		filter["type"] = placeType
	}
	if recommended != nil {
		filter["is_recommended"] = *recommended
	}

	places := make([]models.Place, 0)
	if err := ps.store.Query(ctx, store.PlaceCollection, filter, maxPlaceResults, &places); err != nil {
		return nil, err
	}
	// Records stored before normalization may still carry null lists.
	for i := range places {
		places[i].Normalize()
	}
	return places, nil
}

// Recommended returns the sponsored places.
func (ps *PlaceService) Recommended(ctx context.Context) ([]models.Place, error) {
	places := make([]models.Place, 0)
	filter := map[string]any{"is_recommended": true}
	if err := ps.store.Query(ctx, store.PlaceCollection, filter, maxRecommendedResults, &places); err != nil {
		return nil, err
	}
	for i := range places {
		places[i].Normalize()
	}
	return places, nil
}

func truncateChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
