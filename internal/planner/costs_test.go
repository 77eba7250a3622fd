package planner_test

import (
	"testing"

	"trip_planner/internal/domain"
	"trip_planner/internal/planner"
)

func TestCosts_PerDayTotals(t *testing.T) {
	cases := map[domain.Tier]int{
		domain.TierBudget:  3300,
		domain.TierMid:     7000,
		domain.TierLuxury:  15000,
		domain.TierPremium: 27500,
	}
	for tier, want := range cases {
		if got := planner.Costs(tier).Total(); got != want {
			t.Errorf("%s: total %d, want %d", tier, got, want)
		}
	}
	// unknown tier falls back to mid
	if got := planner.Costs(domain.Tier("platinum")).Total(); got != 7000 {
		t.Errorf("unknown tier: %d", got)
	}
}

func TestClassifyDestination(t *testing.T) {
	cases := map[string]planner.DestinationType{
		"Havelock Island":    planner.TypeBeach,
		"Munnar Hills":       planner.TypeMountain,
		"Jim Corbett Park":   planner.TypeNature,
		"Thar Desert Safari": planner.TypeDesert,
		"Mumbai":             planner.TypeCity,
	}
	for dest, want := range cases {
		if got := planner.ClassifyDestination(dest); got != want {
			t.Errorf("%s: %s, want %s", dest, got, want)
		}
	}
}

func TestTripTotal_MountainMultiplier(t *testing.T) {
	// luxury 15000/day x 2 days x 1.3 = 39000
	if got := planner.TripTotal(domain.TierLuxury, "Manali Valley", 2); got != 39000 {
		t.Fatalf("total: %d", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := map[int]string{
		0:       "₹0",
		500:     "₹500",
		7000:    "₹7,000",
		21000:   "₹21,000",
		1234567: "₹1,234,567",
	}
	for n, want := range cases {
		if got := planner.FormatINR(n); got != want {
			t.Errorf("%d: %s, want %s", n, got, want)
		}
	}
}
