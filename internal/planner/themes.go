package planner

import "strings"

var destinationThemes = map[string][]string{
	"Mumbai":   {"Heritage & Culture", "Food & Local Life", "Modern Mumbai"},
	"Delhi":    {"Old Delhi Heritage", "Imperial Delhi", "Markets & Food"},
	"Goa":      {"Beaches & Relaxation", "Portuguese Heritage", "Coastal Adventures"},
	"Jaipur":   {"Forts & Palaces", "Pink City Bazaars", "Royal Rajasthan"},
	"Varanasi": {"Ghats & Ganga", "Temples & Rituals", "Old City Lanes"},
	"Kerala":   {"Backwaters", "Hill Stations & Tea", "Culture & Cuisine"},
}

var genericThemes = []string{"Cultural Experience", "Local Exploration", "Adventure & Discovery"}

// Interest overrides, in priority order. The first interest present in
// the request wins; otherwise themes rotate by day.
var themeOverrides = []struct {
	Interest string
	Theme    string
}{
	{"food", "Food & Culinary Experience"},
	{"adventure", "Adventure & Exploration"},
	{"relaxation", "Relaxation & Wellness"},
	{"culture", "Cultural & Heritage Experience"},
}

// Theme picks the theme for one day: interest override first, then the
// destination's theme list rotated by day number.
func Theme(dest string, day int, interests []string) string {
	for _, ov := range themeOverrides {
		for _, in := range interests {
			if strings.EqualFold(strings.TrimSpace(in), ov.Interest) {
				return ov.Theme
			}
		}
	}
	list, ok := destinationThemes[dest]
	if !ok {
		list = genericThemes
	}
	return list[(day-1)%len(list)]
}
