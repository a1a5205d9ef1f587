package services

import (
	"context"

	"github.com/visitpazar/api/internal/models"
	"github.com/visitpazar/api/internal/store"
)

const maxCatalogResults = 100

// CatalogService covers the uniform resources: guides, events, tours,
// bookings and premium content. Each kind is validate-then-insert on create
// and a capped exact-match query on list.
type CatalogService struct {
	store DocumentStore
}

func NewCatalogService(store DocumentStore) *CatalogService {
	return &CatalogService{store: store}
}

func (cs *CatalogService) CreateGuide(ctx context.Context, guide models.Guide) (string, error) {
	guide.Normalize()
	if err := models.CheckSchema(guide); err != nil {
		return "", err
	}
	return cs.store.Create(ctx, store.GuideCollection, guide)
}

func (cs *CatalogService) ListGuides(ctx context.Context) ([]models.Guide, error) {
	guides := make([]models.Guide, 0)
	if err := cs.store.Query(ctx, store.GuideCollection, nil, maxCatalogResults, &guides); err != nil {
		return nil, err
	}
	// Records stored before normalization may still carry null lists.
	for i := range guides {
		guides[i].Normalize()
	}
	return guides, nil
}

func (cs *CatalogService) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	if err := models.CheckSchema(event); err != nil {
		return "", err
	}
	return cs.store.Create(ctx, store.EventCollection, event)
}

func (cs *CatalogService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := cs.store.Query(ctx, store.EventCollection, nil, maxCatalogResults, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (cs *CatalogService) CreateTour(ctx context.Context, tour models.Tour) (string, error) {
	if err := models.CheckSchema(tour); err != nil {
		return "", err
	}
	return cs.store.Create(ctx, store.TourCollection, tour)
}

func (cs *CatalogService) ListTours(ctx context.Context) ([]models.Tour, error) {
	tours := make([]models.Tour, 0)
	if err := cs.store.Query(ctx, store.TourCollection, nil, maxCatalogResults, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (cs *CatalogService) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	booking.Normalize()
	if err := models.CheckSchema(booking); err != nil {
		return "", err
	}
	return cs.store.Create(ctx, store.BookingCollection, booking)
}

func (cs *CatalogService) CreatePremium(ctx context.Context, content models.PremiumContent) (string, error) {
	content.Normalize()
	if err := models.CheckSchema(content); err != nil {
		return "", err
	}
	return cs.store.Create(ctx, store.PremiumCollection, content)
}

// ListPremium returns only active premium content.
func (cs *CatalogService) ListPremium(ctx context.Context) ([]models.PremiumContent, error) {
	contents := make([]models.PremiumContent, 0)
	filter := map[string]any{"is_active": true}
	if err := cs.store.Query(ctx, store.PremiumCollection, filter, maxCatalogResults, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}
