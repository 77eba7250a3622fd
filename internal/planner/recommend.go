package planner

import (
	"fmt"

	"trip_planner/internal/domain"
)

// Stay-and-travel guides keyed by tier, plus trip recommendations
// derived from the destination type. All deterministic.

var accommodationByTier = map[domain.Tier][]string{
	domain.TierBudget:  {"Backpacker hostels near the centre", "Family-run guesthouses", "Budget hotel chains"},
	domain.TierMid:     {"3-star hotels in well-connected areas", "Boutique homestays", "Serviced apartments"},
	domain.TierLuxury:  {"5-star hotels with full amenities", "Heritage properties", "Luxury boutique stays"},
	domain.TierPremium: {"Palace hotels and grand heritage suites", "Premium resorts with butler service", "Exclusive private villas"},
}

var transportByTier = map[domain.Tier][]string{
	domain.TierBudget:  {"Local buses and metro where available", "Shared auto-rickshaws", "Walking between nearby sights"},
	domain.TierMid:     {"App-based cabs for longer hops", "Metro and auto-rickshaws in the centre", "Prepaid taxis from stations"},
	domain.TierLuxury:  {"Private car with driver for the day", "App-based premium cabs", "Airport transfers arranged by hotel"},
	domain.TierPremium: {"Chauffeured luxury car throughout", "Private transfers for all excursions", "Helicopter or charter options where offered"},
}

func accommodationGuide(tier domain.Tier, dest string) []string {
	list, ok := accommodationByTier[tier]
	if !ok {
		list = accommodationByTier[domain.TierMid]
	}
	out := make([]string, len(list))
	copy(out, list)
	out[0] = fmt.Sprintf("%s in %s", out[0], dest)
	return out
}

func transportGuide(tier domain.Tier) []string {
	list, ok := transportByTier[tier]
	if !ok {
		list = transportByTier[domain.TierMid]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

var bestTimeByType = map[DestinationType]string{
	TypeBeach:    "November to February, before the pre-monsoon heat",
	TypeMountain: "March to June and September to November",
	TypeNature:   "October to March, when wildlife sightings peak",
	TypeDesert:   "October to February, cool days and cold nights",
	TypeCity:     "October to March, the cooler dry season",
}

var clothingByType = map[DestinationType][]string{
	TypeBeach:    {"Light cottons and swimwear", "Sun hat and reef-safe sunscreen", "Sandals plus one pair of walking shoes"},
	TypeMountain: {"Warm layers and a windproof jacket", "Sturdy walking shoes", "Sunglasses and high-SPF sunscreen"},
	TypeNature:   {"Neutral-coloured full-sleeve clothing", "Closed walking shoes", "Insect repellent and a rain layer"},
	TypeDesert:   {"Breathable full-length layers for the day", "A warm layer for cold nights", "Scarf or buff against dust"},
	TypeCity:     {"Comfortable cottons and walking shoes", "A modest layer for religious sites", "Light jacket for evenings"},
}

var precautionsByType = map[DestinationType][]string{
	TypeBeach:    {"Swim only at flagged beaches", "Watch valuables on the sand", "Check tide timings for walks"},
	TypeMountain: {"Acclimatise before strenuous treks", "Carry water and snacks on trails", "Check road conditions in bad weather"},
	TypeNature:   {"Keep distance from wildlife", "Stay with your guide on trails", "Carry any personal medication into remote areas"},
	TypeDesert:   {"Avoid midday sun exposure", "Carry more water than you think you need", "Confirm camp bookings before arrival"},
	TypeCity:     {"Use registered taxis or app cabs at night", "Keep digital copies of documents", "Drink bottled or filtered water"},
}

// Recommend builds the recommendations block from the destination type
// and the requested interests.
func Recommend(req domain.GenerateRequest) domain.Recommendations {
	t := ClassifyDestination(req.Destination)
	rec := domain.Recommendations{
		Clothing:    append([]string(nil), clothingByType[t]...),
		Precautions: append([]string(nil), precautionsByType[t]...),
		BestTime:    bestTimeByType[t],
	}
	rec.Activities = []string{
		fmt.Sprintf("Guided walking tour of %s", req.Destination),
		fmt.Sprintf("A cooking class or food walk in %s", req.Destination),
	}
	for _, in := range req.Interests {
		rec.Activities = append(rec.Activities, fmt.Sprintf("Dedicated %s experiences in %s", in, req.Destination))
	}
	return rec
}

// BestTime exposes the seasonal window for a destination.
func BestTime(dest string) string {
	return bestTimeByType[ClassifyDestination(dest)]
}
