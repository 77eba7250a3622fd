package planner

import (
	"strings"

	"trip_planner/internal/domain"
)

// Reference data used by enrichment: currency inference, the popular
// currency list, and placeholder images for failed image lookups.

// LocalCurrency infers a destination's likely currency by keyword
// containment, defaulting to INR.
func LocalCurrency(destination string) string {
	d := strings.ToLower(destination)
	switch {
	case strings.Contains(d, "usa") || strings.Contains(d, "united states"):
		return "USD"
	case strings.Contains(d, "europe") || strings.Contains(d, "uk"):
		return "EUR"
	case strings.Contains(d, "japan"):
		return "JPY"
	}
	return "INR"
}

// PopularCurrencies lists the pairs travelers ask about most.
func PopularCurrencies() []domain.Currency {
	return []domain.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "GBP", Name: "British Pound", Symbol: "£"},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
		{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
		{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
		{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	}
}

// Category-matched placeholder images, picked by keyword containment
// when image search fails or returns nothing.
var placeholderImages = []struct {
	keyword string
	url     string
}{
	{"beach", "https://images.pexels.com/photos/1032650/pexels-photo-1032650.jpeg"},
	{"fort", "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg"},
	{"palace", "https://images.pexels.com/photos/3581364/pexels-photo-3581364.jpeg"},
	{"temple", "https://images.pexels.com/photos/2161467/pexels-photo-2161467.jpeg"},
	{"food", "https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg"},
	{"market", "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"},
	{"mountain", "https://images.pexels.com/photos/417173/pexels-photo-417173.jpeg"},
	{"museum", "https://images.pexels.com/photos/2563681/pexels-photo-2563681.jpeg"},
}

const defaultPlaceholderImage = "https://images.pexels.com/photos/2007401/pexels-photo-2007401.jpeg"

// PlaceholderImage returns a static stand-in image for a keyword.
func PlaceholderImage(keyword string) domain.ImageRef {
	k := strings.ToLower(keyword)
	for _, p := range placeholderImages {
		if strings.Contains(k, p.keyword) {
			return domain.ImageRef{URL: p.url, Alt: keyword}
		}
	}
	return domain.ImageRef{URL: defaultPlaceholderImage, Alt: keyword}
}
