package domain

import "context"

// TextGenerator is the AI text-generation collaborator. Callers bound the
// call with a context deadline; implementations must honor it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type WeatherClient interface {
	Current(ctx context.Context, city string) (WeatherReport, error)
	Forecast(ctx context.Context, city string, days int) ([]ForecastDay, error)
}

type CurrencyClient interface {
	Rates(ctx context.Context, base string) (RateTable, error)
}

// Geocoder resolves a place name to coordinates. Implementations never
// fail; unknown places resolve to a default centroid.
type Geocoder interface {
	Locate(place string) Coords
}

type ImageSearcher interface {
	Search(ctx context.Context, query string) (ImageRef, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type ItineraryRepository interface {
	Save(ctx context.Context, it SavedItinerary) error
	Get(ctx context.Context, id string) (SavedItinerary, error)
	ListByOwner(ctx context.Context, owner string) ([]SavedItinerary, error)
}
