package domain

import (
	"fmt"
	"strings"
	"time"
)

// Tier is the budget level controlling all cost-table lookups.
type Tier string

const (
	TierBudget  Tier = "budget"
	TierMid     Tier = "mid"
	TierLuxury  Tier = "luxury"
	TierPremium Tier = "premium"
)

// ParseTier normalizes a user-supplied tier; empty defaults to mid.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return TierMid, true
	case TierBudget:
		return TierBudget, true
	case TierMid:
		return TierMid, true
	case TierLuxury:
		return TierLuxury, true
	case TierPremium:
		return TierPremium, true
	}
	return "", false
}

// Provenance records which path produced the itinerary content.
// It is set once at assembly and never changes afterwards.
type Provenance string

const (
	SourceAI       Provenance = "ai"
	SourceFallback Provenance = "fallback"
)

type GenerateRequest struct {
	Destination string
	Duration    int
	Budget      Tier
	Interests   []string
}

func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if r.Duration < 1 {
		return fmt.Errorf("duration must be at least 1 day")
	}
	switch r.Budget {
	case TierBudget, TierMid, TierLuxury, TierPremium:
	default:
		return fmt.Errorf("unknown budget tier %q", r.Budget)
	}
	return nil
}

// Itinerary is the root aggregate. One is built fresh per request;
// it only acquires identity when explicitly saved.
type Itinerary struct {
	Destination     string          `json:"destination"`
	Duration        int             `json:"duration"`
	Interests       []string        `json:"interests"`
	Budget          Tier            `json:"budget"`
	TotalCost       string          `json:"totalCost"`
	Highlights      []string        `json:"highlights"`
	LocalTips       []string        `json:"localTips"`
	Overview        Overview        `json:"overview"`
	Days            []DayPlan       `json:"days"`
	Recommendations Recommendations `json:"recommendations"`
	GeneratedBy     Provenance      `json:"generatedBy"`
	GeneratedAt     time.Time       `json:"generatedAt"`

	// Enrichment fields; nil when the collaborator failed or is unconfigured.
	Weather     *WeatherReport `json:"weather,omitempty"`
	Currency    *CurrencyInfo  `json:"currency,omitempty"`
	Coordinates *Coords        `json:"coordinates,omitempty"`
}

type Overview struct {
	Summary  string `json:"summary"`
	BestTime string `json:"bestTime"`
}

type DayPlan struct {
	Day           int         `json:"day"`
	Theme         string      `json:"theme"`
	Activities    DaySegments `json:"activities"`
	Restaurants   Dining      `json:"restaurants"`
	Accommodation []string    `json:"accommodation"`
	Transport     []string    `json:"transport"`
	EstimatedCost string      `json:"estimatedCost"`
}

type DaySegments struct {
	Morning   []Activity `json:"morning"`
	Afternoon []Activity `json:"afternoon"`
	Evening   []Activity `json:"evening"`
}

type Dining struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
}

type Activity struct {
	Name         string    `json:"activity"`
	Description  string    `json:"description,omitempty"`
	Time         string    `json:"time,omitempty"`
	Cost         string    `json:"cost,omitempty"`
	Tip          string    `json:"tip,omitempty"`
	ImageKeyword string    `json:"imageKeyword,omitempty"`
	Image        *ImageRef `json:"image,omitempty"`
}

type ImageRef struct {
	URL             string `json:"url"`
	Alt             string `json:"alt,omitempty"`
	Photographer    string `json:"photographer,omitempty"`
	PhotographerURL string `json:"photographerUrl,omitempty"`
}

type Recommendations struct {
	Clothing    []string `json:"clothing"`
	Activities  []string `json:"activities"`
	Precautions []string `json:"precautions"`
	BestTime    string   `json:"bestTime"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type WeatherReport struct {
	Temperature int           `json:"temperature"`
	FeelsLike   int           `json:"feelsLike"`
	Description string        `json:"description"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"windSpeed"` // km/h, rounded
	Icon        string        `json:"icon,omitempty"`
	Forecast    []ForecastDay `json:"forecast,omitempty"`
}

type ForecastDay struct {
	Date        string `json:"date"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Description string `json:"description"`
}

type CurrencyInfo struct {
	Base      string             `json:"base"`
	Local     string             `json:"local"`
	Rate      float64            `json:"rate"`
	Rates     map[string]float64 `json:"rates,omitempty"`
	UpdatedAt string             `json:"updatedAt,omitempty"`
}

type RateTable struct {
	Base      string
	Rates     map[string]float64
	UpdatedAt string
}

// Convert applies a rate from the table; same-currency conversion is
// identity without a lookup.
func (t RateTable) Convert(amount float64, to string) (float64, error) {
	to = strings.ToUpper(strings.TrimSpace(to))
	if to == t.Base {
		return amount, nil
	}
	rate, ok := t.Rates[to]
	if !ok {
		return 0, fmt.Errorf("no rate for %s from %s", to, t.Base)
	}
	return amount * rate, nil
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// SavedItinerary is an itinerary a user chose to keep. Append-only:
// re-saving produces a new entry rather than mutating an old one.
type SavedItinerary struct {
	ID        string
	Owner     string
	Document  Itinerary
	CreatedAt time.Time
}
