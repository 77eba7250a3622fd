package planner

import (
	"fmt"
	"strings"
	"time"

	"trip_planner/internal/domain"
)

// Assemble turns a validated draft into the canonical itinerary. Both
// the AI and fallback paths come through here, so every invariant
// (day count, segment arity, cost derivation) is enforced in one place.
func Assemble(req domain.GenerateRequest, d Draft, src domain.Provenance, now time.Time) (domain.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return domain.Itinerary{}, err
	}
	if len(d.Days) < req.Duration {
		// Both paths guarantee the full day count, so this is the one
		// fatal outcome the pipeline is allowed to surface.
		return domain.Itinerary{}, fmt.Errorf("%w: draft has %d of %d days", domain.ErrGenerationFailed, len(d.Days), req.Duration)
	}

	perDay := Costs(req.Budget).Total()

	it := domain.Itinerary{
		Destination: req.Destination,
		Duration:    req.Duration,
		Interests:   append([]string(nil), req.Interests...),
		Budget:      req.Budget,
		TotalCost:   FormatINR(TripTotal(req.Budget, req.Destination, req.Duration)),
		Highlights:  d.Highlights,
		LocalTips:   d.LocalTips,
		Overview: domain.Overview{
			Summary:  summarize(req),
			BestTime: BestTime(req.Destination),
		},
		Recommendations: Recommend(req),
		GeneratedBy:     src,
		GeneratedAt:     now.UTC(),
	}

	if len(it.Highlights) == 0 {
		it.Highlights = genericHighlights(req.Destination)
	}
	if len(it.LocalTips) == 0 {
		it.LocalTips = append([]string(nil), genericTips...)
	}

	fb := Draft{}
	for day := 1; day <= req.Duration; day++ {
		dd := d.Days[day-1]

		theme := strings.TrimSpace(dd.Theme)
		if theme == "" {
			theme = Theme(req.Destination, day, req.Interests)
		}

		plan := domain.DayPlan{
			Day:   day,
			Theme: theme,
			Activities: domain.DaySegments{
				Morning:   finishSegment(dd.Morning, req, Morning),
				Afternoon: finishSegment(dd.Afternoon, req, Afternoon),
				Evening:   finishSegment(dd.Evening, req, Evening),
			},
			Restaurants: domain.Dining{
				Breakfast: dd.Breakfast,
				Lunch:     dd.Lunch,
				Dinner:    dd.Dinner,
			},
			Accommodation: accommodationGuide(req.Budget, req.Destination),
			Transport:     transportGuide(req.Budget),
			EstimatedCost: FormatINR(perDay),
		}

		// Dining gaps are filled from the fallback tables so the shape
		// stays uniform regardless of what the model returned.
		if len(plan.Restaurants.Breakfast) == 0 || len(plan.Restaurants.Lunch) == 0 || len(plan.Restaurants.Dinner) == 0 {
			if len(fb.Days) == 0 {
				fb = FallbackDraft(domain.GenerateRequest{Destination: req.Destination, Duration: 1, Budget: req.Budget})
			}
			if len(plan.Restaurants.Breakfast) == 0 {
				plan.Restaurants.Breakfast = fb.Days[0].Breakfast
			}
			if len(plan.Restaurants.Lunch) == 0 {
				plan.Restaurants.Lunch = fb.Days[0].Lunch
			}
			if len(plan.Restaurants.Dinner) == 0 {
				plan.Restaurants.Dinner = fb.Days[0].Dinner
			}
		}

		it.Days = append(it.Days, plan)
	}

	return it, nil
}

// maxPerSegment caps each day segment after dedup.
const maxPerSegment = 4

// finishSegment dedups (case-sensitive, first occurrence wins),
// truncates to the cap, and fills blanks with tier defaults.
func finishSegment(in ActivityList, req domain.GenerateRequest, seg Segment) []domain.Activity {
	out := make([]domain.Activity, 0, maxPerSegment)
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}

		if a.Time == "" {
			a.Time = segmentWindows[seg]
		}
		if a.Cost == "" {
			a.Cost = ActivityCost(req.Budget, seg)
		}
		if a.Tip == "" {
			a.Tip = segmentTips[seg]
		}
		if a.ImageKeyword == "" {
			a.ImageKeyword = a.Name + " " + req.Destination
		}

		out = append(out, a)
		if len(out) == maxPerSegment {
			break
		}
	}
	return out
}

func summarize(req domain.GenerateRequest) string {
	if len(req.Interests) == 0 {
		return fmt.Sprintf("A %d-day %s-budget trip to %s.", req.Duration, req.Budget, req.Destination)
	}
	return fmt.Sprintf("A %d-day %s-budget trip to %s built around %s.",
		req.Duration, req.Budget, req.Destination, strings.Join(req.Interests, ", "))
}
