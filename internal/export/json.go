package export

import (
	"encoding/json"
	"time"

	"trip_planner/internal/domain"
)

// SchemaVersion identifies the exported JSON shape.
const SchemaVersion = "1.0"

const appTag = "trip-planner"

// Envelope wraps the itinerary with export metadata.
type Envelope struct {
	domain.Itinerary
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
	App        string    `json:"app"`
}

// JSON serializes the itinerary verbatim plus export metadata. When
// path is non-empty the bytes are also written atomically to disk.
func JSON(it domain.Itinerary, now time.Time, path string) ([]byte, error) {
	env := Envelope{Itinerary: it, ExportedAt: now.UTC(), Version: SchemaVersion, App: appTag}
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := writeAtomic(path, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}
