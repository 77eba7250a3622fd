package geocode

import (
	"strings"

	"trip_planner/internal/domain"
)

// Static lookup table of known destinations. Unknown places resolve to
// the country centroid instead of failing.
var coords = map[string]domain.Coords{
	"mumbai":   {Lat: 19.0760, Lng: 72.8777},
	"delhi":    {Lat: 28.7041, Lng: 77.1025},
	"goa":      {Lat: 15.2993, Lng: 74.1240},
	"jaipur":   {Lat: 26.9124, Lng: 75.7873},
	"varanasi": {Lat: 25.3176, Lng: 82.9739},
	"kerala":   {Lat: 10.8505, Lng: 76.2711},
}

var defaultCentroid = domain.Coords{Lat: 20.5937, Lng: 78.9629}

type Static struct{}

func New() Static { return Static{} }

func (Static) Locate(place string) domain.Coords {
	if c, ok := coords[strings.ToLower(strings.TrimSpace(place))]; ok {
		return c
	}
	return defaultCentroid
}
