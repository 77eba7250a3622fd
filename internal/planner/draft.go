package planner

import (
	"encoding/json"

	"trip_planner/internal/domain"
)

// Draft is the pre-assembly itinerary content. The AI path and the
// fallback path both produce this shape, so the assembler never
// branches on provenance.
type Draft struct {
	Destination string     `json:"destination"`
	Days        []DraftDay `json:"days"`
	Highlights  []string   `json:"highlights,omitempty"`
	LocalTips   []string   `json:"localTips,omitempty"`
}

type DraftDay struct {
	Theme     string       `json:"theme,omitempty"`
	Morning   ActivityList `json:"morning"`
	Afternoon ActivityList `json:"afternoon"`
	Evening   ActivityList `json:"evening"`
	Breakfast []string     `json:"breakfast,omitempty"`
	Lunch     []string     `json:"lunch,omitempty"`
	Dinner    []string     `json:"dinner,omitempty"`
}

// ActivityList accepts both the structured activity objects the prompt
// asks for and the bare-string lists some model responses degrade to.
type ActivityList []domain.Activity

func (l *ActivityList) UnmarshalJSON(b []byte) error {
	var objs []domain.Activity
	if err := json.Unmarshal(b, &objs); err == nil {
		*l = objs
		return nil
	}
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	out := make([]domain.Activity, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Activity{Name: n})
	}
	*l = out
	return nil
}
