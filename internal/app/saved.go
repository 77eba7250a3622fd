package app

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"trip_planner/internal/domain"
)

// SavedItineraryService persists itineraries a user chose to keep.
// Saves are append-only; reads are cache-aside.
type SavedItineraryService struct {
	repo     domain.ItineraryRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSavedItineraryService(r domain.ItineraryRepository, c domain.Cache, ttl time.Duration) *SavedItineraryService {
	return &SavedItineraryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *SavedItineraryService) Save(ctx context.Context, owner string, it domain.Itinerary) (domain.SavedItinerary, error) {
	si := domain.SavedItinerary{
		ID:        uuid.NewString(),
		Owner:     strings.TrimSpace(owner),
		Document:  it,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, si); err != nil {
		return domain.SavedItinerary{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, ownerKey(si.Owner))
	}
	return si, nil
}

func (s *SavedItineraryService) Get(ctx context.Context, id string) (domain.SavedItinerary, error) {
	key := "saved:" + id
	var si domain.SavedItinerary
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &si); ok {
			return si, nil
		}
	}
	si, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.SavedItinerary{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, si, int(s.cacheTTL.Seconds()))
	}
	return si, nil
}

func (s *SavedItineraryService) ListByOwner(ctx context.Context, owner string) ([]domain.SavedItinerary, error) {
	key := ownerKey(owner)
	var out []domain.SavedItinerary
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	list, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	// copy the slice so callers can't mutate the cached value
	cp := make([]domain.SavedItinerary, len(list))
	copy(cp, list)

	// size guard: skip caching oversized lists
	if s.cache != nil {
		if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
			_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
		}
	}
	return cp, nil
}

func ownerKey(owner string) string { return "saved:owner:" + owner }
