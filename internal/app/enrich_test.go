package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/planner"
)

// ---- fakes ----

type fakeWeather struct {
	report domain.WeatherReport
	err    error
}

func (f *fakeWeather) Current(ctx context.Context, city string) (domain.WeatherReport, error) {
	return f.report, f.err
}
func (f *fakeWeather) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.ForecastDay{{Date: "2026-08-30", High: 31, Low: 26, Description: "light rain"}}, nil
}

type fakeCurrency struct {
	table domain.RateTable
	err   error
}

func (f *fakeCurrency) Rates(ctx context.Context, base string) (domain.RateTable, error) {
	return f.table, f.err
}

type fakeGeo struct{}

func (fakeGeo) Locate(place string) domain.Coords { return domain.Coords{Lat: 19.07, Lng: 72.87} }

type fakeImages struct {
	ref   domain.ImageRef
	err   error
	calls int
}

func (f *fakeImages) Search(ctx context.Context, query string) (domain.ImageRef, error) {
	f.calls++
	return f.ref, f.err
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.WeatherReport:
		*d = v.(domain.WeatherReport)
	case *domain.RateTable:
		*d = v.(domain.RateTable)
	case *domain.ImageRef:
		*d = v.(domain.ImageRef)
	case *domain.SavedItinerary:
		*d = v.(domain.SavedItinerary)
	case *[]domain.SavedItinerary:
		*d = v.([]domain.SavedItinerary)
	default:
		return false, nil
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func enrichTarget() domain.Itinerary {
	return domain.Itinerary{
		Destination: "Mumbai",
		Duration:    1,
		Budget:      domain.TierMid,
		Days: []domain.DayPlan{{
			Day: 1,
			Activities: domain.DaySegments{
				Morning:   []domain.Activity{{Name: "Gateway of India", ImageKeyword: "Gateway of India Mumbai"}},
				Afternoon: []domain.Activity{{Name: "Elephanta Caves", ImageKeyword: "Elephanta Caves Mumbai"}},
				Evening:   []domain.Activity{{Name: "Marine Drive", ImageKeyword: "Marine Drive Mumbai"}},
			},
		}},
	}
}

// ---- tests ----

func TestEnrich_AllCollaboratorsHealthy(t *testing.T) {
	svc := app.NewEnrichmentService(
		&fakeWeather{report: domain.WeatherReport{Temperature: 30, Description: "haze"}},
		&fakeCurrency{table: domain.RateTable{Base: "INR", Rates: map[string]float64{"USD": 0.012}, UpdatedAt: "2026-08-29"}},
		fakeGeo{},
		&fakeImages{ref: domain.ImageRef{URL: "https://images.example/1.jpg", Photographer: "Ana"}},
		&fakeCache{},
		10*time.Minute,
	)

	it := enrichTarget()
	svc.Enrich(context.Background(), &it)

	if it.Weather == nil || it.Weather.Temperature != 30 {
		t.Fatalf("weather: %+v", it.Weather)
	}
	if len(it.Weather.Forecast) != 1 {
		t.Fatalf("forecast: %+v", it.Weather.Forecast)
	}
	if it.Currency == nil || it.Currency.Base != "INR" || it.Currency.Local != "INR" || it.Currency.Rate != 1 {
		t.Fatalf("currency: %+v", it.Currency)
	}
	if it.Coordinates == nil || it.Coordinates.Lat != 19.07 {
		t.Fatalf("coordinates: %+v", it.Coordinates)
	}
	img := it.Days[0].Activities.Morning[0].Image
	if img == nil || img.URL != "https://images.example/1.jpg" {
		t.Fatalf("image: %+v", img)
	}
}

func TestEnrich_WeatherFailureIsIsolated(t *testing.T) {
	svc := app.NewEnrichmentService(
		&fakeWeather{err: errors.New("upstream down")},
		&fakeCurrency{table: domain.RateTable{Base: "INR", Rates: map[string]float64{"USD": 0.012}}},
		fakeGeo{},
		&fakeImages{ref: domain.ImageRef{URL: "https://images.example/1.jpg"}},
		nil,
		0,
	)

	it := enrichTarget()
	svc.Enrich(context.Background(), &it)

	if it.Weather != nil {
		t.Fatalf("weather should stay nil on failure: %+v", it.Weather)
	}
	if it.Currency == nil || it.Coordinates == nil {
		t.Fatalf("other enrichments should still run")
	}
	if it.Days[0].Activities.Evening[0].Image == nil {
		t.Fatalf("images should still attach")
	}
}

func TestEnrich_ImageFailureUsesPlaceholder(t *testing.T) {
	svc := app.NewEnrichmentService(nil, nil, fakeGeo{}, &fakeImages{err: errors.New("quota")}, nil, 0)

	it := enrichTarget()
	svc.Enrich(context.Background(), &it)

	img := it.Days[0].Activities.Morning[0].Image
	if img == nil || img.URL == "" {
		t.Fatalf("expected placeholder image, got %+v", img)
	}
	want := planner.PlaceholderImage("Gateway of India Mumbai")
	if img.URL != want.URL {
		t.Fatalf("placeholder mismatch: %s vs %s", img.URL, want.URL)
	}
}

func TestEnrich_ImageCacheAvoidsRepeatLookups(t *testing.T) {
	images := &fakeImages{ref: domain.ImageRef{URL: "https://images.example/1.jpg"}}
	cache := &fakeCache{}
	svc := app.NewEnrichmentService(nil, nil, fakeGeo{}, images, cache, 10*time.Minute)

	it := enrichTarget()
	// same keyword on two activities
	it.Days[0].Activities.Afternoon[0].ImageKeyword = it.Days[0].Activities.Morning[0].ImageKeyword

	svc.Enrich(context.Background(), &it)

	// 2 unique keywords -> 2 provider calls, third served from cache
	if images.calls != 2 {
		t.Fatalf("provider calls: %d", images.calls)
	}
}

func TestExchangeRates_ProviderNotConfigured(t *testing.T) {
	svc := app.NewEnrichmentService(nil, nil, fakeGeo{}, nil, nil, 0)
	_, err := svc.ExchangeRates(context.Background(), "INR")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCurrencyInfo_LocalCurrencyRate(t *testing.T) {
	svc := app.NewEnrichmentService(
		nil,
		&fakeCurrency{table: domain.RateTable{Base: "INR", Rates: map[string]float64{"USD": 0.012}}},
		fakeGeo{},
		nil, nil, 0,
	)
	it := enrichTarget()
	it.Destination = "New York, USA"
	svc.Enrich(context.Background(), &it)

	if it.Currency == nil {
		t.Fatalf("currency missing")
	}
	if it.Currency.Local != "USD" || it.Currency.Rate != 0.012 {
		t.Fatalf("local currency: %+v", it.Currency)
	}
	if !strings.EqualFold(it.Currency.Base, "INR") {
		t.Fatalf("base: %s", it.Currency.Base)
	}
}
