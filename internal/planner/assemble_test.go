package planner_test

import (
	"errors"
	"testing"
	"time"

	"trip_planner/internal/domain"
	"trip_planner/internal/planner"
)

func testReq(dest string, days int, tier domain.Tier, interests ...string) domain.GenerateRequest {
	return domain.GenerateRequest{Destination: dest, Duration: days, Budget: tier, Interests: interests}
}

func TestAssemble_FromFallback(t *testing.T) {
	req := testReq("Mumbai", 3, domain.TierMid)
	d := planner.FallbackDraft(req)

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	it, err := planner.Assemble(req, d, domain.SourceFallback, now)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if it.Duration != 3 || len(it.Days) != 3 {
		t.Fatalf("days: duration=%d len=%d", it.Duration, len(it.Days))
	}
	if it.GeneratedBy != domain.SourceFallback {
		t.Fatalf("provenance: %s", it.GeneratedBy)
	}
	if !it.GeneratedAt.Equal(now) {
		t.Fatalf("generatedAt: %v", it.GeneratedAt)
	}

	// mid tier per-day: 3500+1500+600+1000+400
	if it.Days[0].EstimatedCost != "₹7,000" {
		t.Fatalf("per-day cost: %s", it.Days[0].EstimatedCost)
	}
	// city destination, multiplier 1.0: 7000 * 3
	if it.TotalCost != "₹21,000" {
		t.Fatalf("total cost: %s", it.TotalCost)
	}
}

func TestAssemble_BeachMultiplier(t *testing.T) {
	req := testReq("Havelock Island", 2, domain.TierBudget)
	it, err := planner.Assemble(req, planner.FallbackDraft(req), domain.SourceFallback, time.Now())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// budget per-day 3300, x2 days, x1.2 beach multiplier = 7920
	if it.TotalCost != "₹7,920" {
		t.Fatalf("total cost: %s", it.TotalCost)
	}
}

func TestAssemble_TooFewDaysFails(t *testing.T) {
	req := testReq("Mumbai", 3, domain.TierMid)
	short := planner.FallbackDraft(testReq("Mumbai", 2, domain.TierMid))

	_, err := planner.Assemble(req, short, domain.SourceAI, time.Now())
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestAssemble_DedupAndCap(t *testing.T) {
	req := testReq("Goa", 1, domain.TierMid)
	d := planner.Draft{
		Destination: "Goa",
		Days: []planner.DraftDay{{
			Morning: planner.ActivityList{
				{Name: "Baga Beach"},
				{Name: "Baga Beach"}, // duplicate
				{Name: "Fort Aguada"},
				{Name: "Anjuna Flea Market"},
				{Name: "Chapora Fort"},
				{Name: "Candolim Beach"}, // over the cap
			},
			Afternoon: planner.ActivityList{{Name: "Dudhsagar Falls"}},
			Evening:   planner.ActivityList{{Name: "Tito's Lane"}},
		}},
	}

	it, err := planner.Assemble(req, d, domain.SourceAI, time.Now())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	m := it.Days[0].Activities.Morning
	if len(m) != 4 {
		t.Fatalf("expected 4 morning activities after dedup+cap, got %d", len(m))
	}
	if m[0].Name != "Baga Beach" || m[1].Name != "Fort Aguada" {
		t.Fatalf("dedup should keep first occurrence: %+v", m)
	}
	// blanks get filled
	if m[0].Time == "" || m[0].Cost == "" || m[0].Tip == "" || m[0].ImageKeyword == "" {
		t.Fatalf("blank fields not filled: %+v", m[0])
	}
	// dining gaps come from the fallback tables
	if len(it.Days[0].Restaurants.Breakfast) == 0 {
		t.Fatalf("breakfast gap not filled")
	}
}

func TestAssemble_ThemeOverridePriority(t *testing.T) {
	req := testReq("Mumbai", 1, domain.TierMid, "relaxation", "food")
	it, err := planner.Assemble(req, planner.FallbackDraft(req), domain.SourceFallback, time.Now())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// food outranks relaxation regardless of request order
	if it.Days[0].Theme != "Food & Culinary Experience" {
		t.Fatalf("theme: %s", it.Days[0].Theme)
	}
}

func TestTheme_RotationForKnownDestination(t *testing.T) {
	if got := planner.Theme("Mumbai", 1, nil); got != "Heritage & Culture" {
		t.Fatalf("day 1: %s", got)
	}
	if got := planner.Theme("Mumbai", 4, nil); got != "Heritage & Culture" {
		t.Fatalf("day 4 should wrap: %s", got)
	}
	if got := planner.Theme("Nowhereville", 2, nil); got != "Local Exploration" {
		t.Fatalf("generic day 2: %s", got)
	}
}
