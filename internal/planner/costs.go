package planner

import (
	"math"
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

// CostBreakdown holds the five per-day base rates (₹) for one tier.
type CostBreakdown struct {
	Accommodation int
	Food          int
	Transport     int
	Activities    int
	Misc          int
}

func (c CostBreakdown) Total() int {
	return c.Accommodation + c.Food + c.Transport + c.Activities + c.Misc
}

var baseCosts = map[domain.Tier]CostBreakdown{
	domain.TierBudget:  {Accommodation: 1500, Food: 800, Transport: 300, Activities: 500, Misc: 200},
	domain.TierMid:     {Accommodation: 3500, Food: 1500, Transport: 600, Activities: 1000, Misc: 400},
	domain.TierLuxury:  {Accommodation: 8000, Food: 3000, Transport: 1200, Activities: 2000, Misc: 800},
	domain.TierPremium: {Accommodation: 15000, Food: 5000, Transport: 2000, Activities: 4000, Misc: 1500},
}

// Costs returns the per-day breakdown for a tier; unknown tiers use mid.
func Costs(tier domain.Tier) CostBreakdown {
	if c, ok := baseCosts[tier]; ok {
		return c
	}
	return baseCosts[domain.TierMid]
}

// Segment is one third of a day.
type Segment string

const (
	Morning   Segment = "morning"
	Afternoon Segment = "afternoon"
	Evening   Segment = "evening"
)

var activityCostRanges = map[domain.Tier]map[Segment]string{
	domain.TierBudget:  {Morning: "₹200-500", Afternoon: "₹300-800", Evening: "₹400-1000"},
	domain.TierMid:     {Morning: "₹500-1000", Afternoon: "₹800-1500", Evening: "₹1000-2000"},
	domain.TierLuxury:  {Morning: "₹1000-2500", Afternoon: "₹1500-3000", Evening: "₹2000-4000"},
	domain.TierPremium: {Morning: "₹2500-5000", Afternoon: "₹3000-6000", Evening: "₹4000-8000"},
}

// ActivityCost returns the indicative cost-range string for one segment
// at one tier, with a generic default for unknown combinations.
func ActivityCost(tier domain.Tier, seg Segment) string {
	if m, ok := activityCostRanges[tier]; ok {
		if s, ok := m[seg]; ok {
			return s
		}
	}
	return "₹500-1500"
}

// DestinationType classifies a destination by keyword containment.
type DestinationType string

const (
	TypeBeach    DestinationType = "beach"
	TypeMountain DestinationType = "mountain"
	TypeNature   DestinationType = "nature"
	TypeDesert   DestinationType = "desert"
	TypeCity     DestinationType = "city"
)

func ClassifyDestination(dest string) DestinationType {
	d := strings.ToLower(dest)
	switch {
	case containsAny(d, "beach", "island", "coast", "sea"):
		return TypeBeach
	case containsAny(d, "mountain", "hill", "peak", "valley"):
		return TypeMountain
	case containsAny(d, "forest", "jungle", "park", "wildlife"):
		return TypeNature
	case strings.Contains(d, "desert"):
		return TypeDesert
	}
	return TypeCity
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func costMultiplier(t DestinationType) float64 {
	switch t {
	case TypeBeach:
		return 1.2
	case TypeMountain:
		return 1.3
	case TypeNature:
		return 1.1
	}
	return 1.0
}

// TripTotal is the whole-trip cost in rupees: per-day tier total times
// duration times the destination-type multiplier, rounded to the
// nearest rupee.
func TripTotal(tier domain.Tier, dest string, duration int) int {
	perDay := Costs(tier).Total()
	total := float64(perDay*duration) * costMultiplier(ClassifyDestination(dest))
	return int(math.Round(total))
}

// FormatINR renders an amount as a ₹-prefixed grouped integer,
// e.g. 21000 -> "₹21,000".
func FormatINR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.Itoa(amount)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return "₹" + b.String()
}
