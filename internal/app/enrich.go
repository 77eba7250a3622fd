package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"trip_planner/internal/domain"
	"trip_planner/internal/planner"
)

// EnrichmentService attaches weather, currency, coordinates and images
// to an assembled itinerary. Each enrichment is independently
// best-effort: a failure is logged, the field stays empty, and the
// other enrichments are unaffected.
type EnrichmentService struct {
	weather  domain.WeatherClient  // nil when unconfigured
	currency domain.CurrencyClient // nil when unconfigured
	geo      domain.Geocoder
	images   domain.ImageSearcher // nil when unconfigured
	cache    domain.Cache         // nil disables caching
	cacheTTL time.Duration
}

func NewEnrichmentService(w domain.WeatherClient, c domain.CurrencyClient, g domain.Geocoder, im domain.ImageSearcher, cache domain.Cache, ttl time.Duration) *EnrichmentService {
	return &EnrichmentService{weather: w, currency: c, geo: g, images: im, cache: cache, cacheTTL: ttl}
}

// Enrich runs the four enrichments concurrently and returns once all
// have settled. It never fails; the itinerary is modified in place.
func (s *EnrichmentService) Enrich(ctx context.Context, it *domain.Itinerary) {
	var g errgroup.Group

	g.Go(func() error { s.attachWeather(ctx, it); return nil })
	g.Go(func() error { s.attachCurrency(ctx, it); return nil })
	g.Go(func() error { s.attachCoordinates(it); return nil })
	g.Go(func() error { s.attachImages(ctx, it); return nil })

	_ = g.Wait()
}

func (s *EnrichmentService) attachWeather(ctx context.Context, it *domain.Itinerary) {
	if s.weather == nil {
		return
	}
	key := "weather:" + strings.ToLower(it.Destination)
	var w domain.WeatherReport
	if s.cacheGet(ctx, key, &w) {
		it.Weather = &w
		return
	}

	w, err := s.weather.Current(ctx, it.Destination)
	if err != nil {
		log.Warn().Err(err).Str("city", it.Destination).Msg("weather enrichment failed")
		return
	}
	if fc, err := s.weather.Forecast(ctx, it.Destination, 5); err == nil {
		w.Forecast = fc
	} else {
		log.Warn().Err(err).Str("city", it.Destination).Msg("forecast enrichment failed")
	}

	s.cacheSet(ctx, key, w)
	it.Weather = &w
}

func (s *EnrichmentService) attachCurrency(ctx context.Context, it *domain.Itinerary) {
	if s.currency == nil {
		return
	}
	const base = "INR"
	key := "fx:" + base
	var t domain.RateTable
	if !s.cacheGet(ctx, key, &t) {
		var err error
		t, err = s.currency.Rates(ctx, base)
		if err != nil {
			log.Warn().Err(err).Msg("currency enrichment failed")
			return
		}
		s.cacheSet(ctx, key, t)
	}

	local := planner.LocalCurrency(it.Destination)
	info := domain.CurrencyInfo{Base: t.Base, Local: local, Rate: 1, Rates: t.Rates, UpdatedAt: t.UpdatedAt}
	if local != t.Base {
		if r, ok := t.Rates[local]; ok {
			info.Rate = r
		}
	}
	it.Currency = &info
}

func (s *EnrichmentService) attachCoordinates(it *domain.Itinerary) {
	c := s.geo.Locate(it.Destination)
	it.Coordinates = &c
}

// attachImages resolves every activity's image keyword, substituting a
// category placeholder on failure so exports always have something to
// show.
func (s *EnrichmentService) attachImages(ctx context.Context, it *domain.Itinerary) {
	for di := range it.Days {
		segs := []*[]domain.Activity{
			&it.Days[di].Activities.Morning,
			&it.Days[di].Activities.Afternoon,
			&it.Days[di].Activities.Evening,
		}
		for _, seg := range segs {
			for ai := range *seg {
				a := &(*seg)[ai]
				if a.ImageKeyword == "" {
					continue
				}
				ref := s.lookupImage(ctx, a.ImageKeyword)
				a.Image = &ref
			}
		}
	}
}

func (s *EnrichmentService) lookupImage(ctx context.Context, keyword string) domain.ImageRef {
	if s.images == nil {
		return planner.PlaceholderImage(keyword)
	}
	key := "img:" + strings.ToLower(keyword)
	var ref domain.ImageRef
	if s.cacheGet(ctx, key, &ref) {
		return ref
	}

	ref, err := s.images.Search(ctx, keyword)
	if err != nil || ref.URL == "" {
		if err != nil {
			log.Warn().Err(err).Str("keyword", keyword).Msg("image search failed")
		}
		return planner.PlaceholderImage(keyword)
	}
	s.cacheSet(ctx, key, ref)
	return ref
}

func (s *EnrichmentService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *EnrichmentService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Lookup methods backing the direct passthrough endpoints.

func (s *EnrichmentService) CurrentWeather(ctx context.Context, city string) (domain.WeatherReport, error) {
	if s.weather == nil {
		return domain.WeatherReport{}, fmt.Errorf("%w: weather provider not configured", domain.ErrUnavailable)
	}
	key := "weather:" + strings.ToLower(city)
	var w domain.WeatherReport
	if s.cacheGet(ctx, key, &w) {
		return w, nil
	}
	w, err := s.weather.Current(ctx, city)
	if err != nil {
		return domain.WeatherReport{}, err
	}
	s.cacheSet(ctx, key, w)
	return w, nil
}

func (s *EnrichmentService) ExchangeRates(ctx context.Context, base string) (domain.RateTable, error) {
	if s.currency == nil {
		return domain.RateTable{}, fmt.Errorf("%w: currency provider not configured", domain.ErrUnavailable)
	}
	key := "fx:" + strings.ToUpper(base)
	var t domain.RateTable
	if s.cacheGet(ctx, key, &t) {
		return t, nil
	}
	t, err := s.currency.Rates(ctx, base)
	if err != nil {
		return domain.RateTable{}, err
	}
	s.cacheSet(ctx, key, t)
	return t, nil
}

func (s *EnrichmentService) Geocode(place string) domain.Coords {
	return s.geo.Locate(place)
}

func (s *EnrichmentService) SearchImage(ctx context.Context, query string) domain.ImageRef {
	return s.lookupImage(ctx, query)
}
