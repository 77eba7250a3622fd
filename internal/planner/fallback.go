package planner

import (
	"fmt"
	"strings"

	"trip_planner/internal/domain"
)

// Static fallback content. Loaded once at init, read-only afterwards;
// output is fully deterministic for identical inputs.

type namedPlace struct {
	Name string
	Desc string
}

type destinationContent struct {
	Morning    []namedPlace
	Afternoon  []namedPlace
	Evening    []namedPlace
	Breakfast  []string
	Lunch      []string
	Dinner     []string
	Highlights []string
	Tips       []string
}

var knownDestinations = map[string]destinationContent{
	"Mumbai": {
		Morning: []namedPlace{
			{"Gateway of India", "Iconic waterfront arch overlooking the harbour"},
			{"Chhatrapati Shivaji Maharaj Vastu Sangrahalaya", "Grand museum of art and natural history"},
			{"Banganga Tank", "Ancient temple tank tucked into Walkeshwar"},
			{"Sassoon Dock", "Working fishing dock at its liveliest before 9am"},
		},
		Afternoon: []namedPlace{
			{"Elephanta Caves", "Rock-cut cave temples reached by ferry"},
			{"Kala Ghoda Art Precinct", "Galleries, boutiques and heritage architecture"},
			{"Crawford Market", "Victorian market hall piled with produce and spices"},
			{"Dharavi Walking Tour", "Small-industry lanes with a local guide"},
		},
		Evening: []namedPlace{
			{"Marine Drive", "Sunset promenade along the Queen's Necklace"},
			{"Juhu Beach", "Street-food stalls and evening crowds on the sand"},
			{"Bandra Bandstand", "Sea-facing walk past Mount Mary church"},
			{"Royal Opera House", "Restored baroque theatre with evening shows"},
		},
		Breakfast:  []string{"Kyani & Co.", "Cafe Madras", "Aaswad"},
		Lunch:      []string{"Britannia & Co.", "Shree Thaker Bhojanalay", "Gajalee"},
		Dinner:     []string{"Trishna", "Khyber", "Bademiya"},
		Highlights: []string{"Gateway of India", "Marine Drive at sunset", "Elephanta Caves", "Street food at Mohammed Ali Road"},
		Tips: []string{
			"Use local trains outside rush hour; buy a tourist day pass",
			"Carry small change for taxis and street food",
			"Book Elephanta ferries from the Gateway jetty, last boat returns by 5:30pm",
		},
	},
	"Delhi": {
		Morning: []namedPlace{
			{"Red Fort", "Mughal fortress of red sandstone"},
			{"Jama Masjid", "One of India's largest mosques, climb the minaret"},
			{"Raj Ghat", "Memorial gardens on the Yamuna bank"},
			{"Lodhi Garden", "Tombs and birdlife on a morning walk"},
		},
		Afternoon: []namedPlace{
			{"Humayun's Tomb", "Garden tomb that inspired the Taj Mahal"},
			{"Qutub Minar", "Soaring 12th-century victory tower"},
			{"National Museum", "From Harappan seals to miniature paintings"},
			{"Dilli Haat", "Open-air crafts bazaar with regional food stalls"},
		},
		Evening: []namedPlace{
			{"India Gate", "War memorial lit up after dark"},
			{"Chandni Chowk", "Old city bazaar lanes and street snacks"},
			{"Hauz Khas Village", "Medieval ruins beside cafes and galleries"},
			{"Kingdom of Dreams", "Bollywood-style live theatre in Gurugram"},
		},
		Breakfast:  []string{"Karim's", "Paranthe Wali Gali", "Andhra Bhavan"},
		Lunch:      []string{"Al Jawahar", "Saravana Bhavan", "Khan Chacha"},
		Dinner:     []string{"Bukhara", "Moti Mahal", "Indian Accent"},
		Highlights: []string{"Red Fort", "Humayun's Tomb", "Qutub Minar", "Old Delhi food walk"},
		Tips: []string{
			"Use the Metro to skip traffic; get a smart card on day one",
			"Dress modestly for mosques and gurudwaras, carry a scarf",
			"Agree auto-rickshaw fares before boarding or insist on the meter",
		},
	},
}

var genericTips = []string{
	"Carry a reusable water bottle and stay hydrated",
	"Keep small change handy for local transport and markets",
	"Dress modestly when visiting religious sites",
	"Try local street food from busy, high-turnover stalls",
	"Download offline maps before heading out for the day",
	"Bargain politely at local markets, start around half the asking price",
	"Respect local customs and ask before photographing people",
}

// Templated generic content, interpolated with the destination name.
var genericActivities = map[DestinationType]map[Segment][]namedPlace{
	TypeBeach: {
		Morning: {
			{"%s Beach Sunrise Walk", "Early walk along the main beach before the crowds"},
			{"%s Fishing Harbour", "Watch the morning catch come in"},
			{"%s Lighthouse Point", "Coastal viewpoint and photo stop"},
		},
		Afternoon: {
			{"%s Water Sports Bay", "Kayaking, snorkelling or a boat trip"},
			{"%s Old Quarter", "Seaside lanes, churches and cafes"},
			{"%s Spice and Fish Market", "Local market browse with a cold drink after"},
		},
		Evening: {
			{"%s Sunset Cruise", "Golden-hour cruise along the coast"},
			{"%s Beach Shacks", "Fresh seafood with your feet in the sand"},
			{"%s Night Market", "Stalls, music and local crafts"},
		},
	},
	TypeMountain: {
		Morning: {
			{"%s Viewpoint Trek", "Short sunrise trek to the main viewpoint"},
			{"%s Monastery Visit", "Quiet morning prayers and mountain views"},
			{"%s Nature Trail", "Guided walk through pine and rhododendron"},
		},
		Afternoon: {
			{"%s Valley Excursion", "Drive or ride into the neighbouring valley"},
			{"%s Local Villages", "Tea with a local family, traditional houses"},
			{"%s Adventure Park", "Ziplining and rope courses with valley views"},
		},
		Evening: {
			{"%s Mall Road Stroll", "Browse wool shops and bakeries as it cools"},
			{"%s Bonfire Dinner", "Campfire, folk music and mountain food"},
			{"%s Stargazing Point", "Clear-sky stargazing away from town lights"},
		},
	},
	TypeNature: {
		Morning: {
			{"%s Safari Drive", "Early-morning wildlife safari, best sighting hours"},
			{"%s Bird Watching Trail", "Guided birding walk at first light"},
			{"%s Canopy Walk", "Treetop walkway through the forest"},
		},
		Afternoon: {
			{"%s Interpretation Centre", "Learn the park's ecology and history"},
			{"%s River Crossing", "Boat or bamboo-raft river trip"},
			{"%s Butterfly Garden", "Slow loop through the conservation garden"},
		},
		Evening: {
			{"%s Night Walk", "Ranger-led walk for nocturnal wildlife"},
			{"%s Eco Lodge Dinner", "Farm-to-table dinner at a forest lodge"},
			{"%s Tribal Crafts Centre", "Local crafts and storytelling"},
		},
	},
	TypeDesert: {
		Morning: {
			{"%s Fort Ramparts", "Golden-stone fort before the heat builds"},
			{"%s Old Havelis", "Carved merchant mansions walking tour"},
			{"%s Artisan Quarter", "Weavers and leather workers at their benches"},
		},
		Afternoon: {
			{"%s Desert Museum", "Folk culture, puppets and textiles"},
			{"%s Oasis Village", "Village visit with a local guide"},
			{"%s Stepwell Visit", "Ancient stepped water architecture"},
		},
		Evening: {
			{"%s Dune Safari", "Camel or jeep ride onto the dunes for sunset"},
			{"%s Desert Camp Dinner", "Folk dance and dinner under the stars"},
			{"%s Rooftop Cafe", "Fort views from an old-city rooftop"},
		},
	},
	TypeCity: {
		Morning: {
			{"%s Heritage Walk", "Guided walk through the historic centre"},
			{"%s Main Temple Complex", "Principal shrine and its morning rituals"},
			{"%s City Museum", "The city's story in one compact museum"},
		},
		Afternoon: {
			{"%s Central Market", "Browse the main bazaar for crafts and snacks"},
			{"%s Gardens and Lake", "Landscaped gardens, pedal boats in season"},
			{"%s Art District", "Galleries and street art in the creative quarter"},
		},
		Evening: {
			{"%s Sunset Point", "The classic viewpoint for golden hour"},
			{"%s Food Street", "Crawl through the city's famous food lane"},
			{"%s Cultural Show", "Music or dance performance in a heritage venue"},
		},
	},
}

var genericMeals = map[Segment][]string{
	Morning:   {"%s Coffee House", "Old Town Breakfast Cafe", "%s Tiffin Rooms"},
	Afternoon: {"%s Thali House", "Riverside Restaurant", "%s Local Kitchen"},
	Evening:   {"%s Heritage Dining Hall", "%s Rooftop Restaurant", "Spice Route Kitchen"},
}

var segmentTips = map[Segment]string{
	Morning:   "Start early to beat the crowds and the heat",
	Afternoon: "Carry water and plan an indoor stop for the hottest hour",
	Evening:   "Book ahead for popular evening spots",
}

var segmentWindows = map[Segment]string{
	Morning:   "09:00 - 13:00",
	Afternoon: "14:00 - 18:00",
	Evening:   "18:00 - 22:00",
}

// FallbackDraft builds a complete draft from static tables. Known
// destinations use curated content; anything else gets templated text
// with the destination name interpolated. Never fails.
func FallbackDraft(req domain.GenerateRequest) Draft {
	dest := strings.TrimSpace(req.Destination)
	dc, known := knownDestinations[dest]

	d := Draft{Destination: dest}
	if known {
		d.Highlights = append([]string(nil), dc.Highlights...)
		d.LocalTips = append([]string(nil), dc.Tips...)
		d.LocalTips = append(d.LocalTips, genericTips[:3]...)
	} else {
		d.Highlights = genericHighlights(dest)
		d.LocalTips = append([]string(nil), genericTips...)
	}

	for day := 1; day <= req.Duration; day++ {
		dd := DraftDay{}
		for _, seg := range []Segment{Morning, Afternoon, Evening} {
			var pool []namedPlace
			if known {
				pool = segmentPool(dc, seg)
			} else {
				pool = genericActivities[ClassifyDestination(dest)][seg]
			}
			acts := pickActivities(pool, dest, day, seg, req.Budget, known)
			switch seg {
			case Morning:
				dd.Morning = acts
			case Afternoon:
				dd.Afternoon = acts
			case Evening:
				dd.Evening = acts
			}
		}
		if known {
			dd.Breakfast = append([]string(nil), dc.Breakfast...)
			dd.Lunch = append([]string(nil), dc.Lunch...)
			dd.Dinner = append([]string(nil), dc.Dinner...)
		} else {
			dd.Breakfast = interpolateAll(genericMeals[Morning], dest)
			dd.Lunch = interpolateAll(genericMeals[Afternoon], dest)
			dd.Dinner = interpolateAll(genericMeals[Evening], dest)
		}
		d.Days = append(d.Days, dd)
	}
	return d
}

func segmentPool(dc destinationContent, seg Segment) []namedPlace {
	switch seg {
	case Morning:
		return dc.Morning
	case Afternoon:
		return dc.Afternoon
	}
	return dc.Evening
}

// pickActivities rotates through the pool by day so consecutive days
// differ, keeping the whole selection deterministic.
func pickActivities(pool []namedPlace, dest string, day int, seg Segment, tier domain.Tier, known bool) ActivityList {
	const perSegment = 3
	out := make(ActivityList, 0, perSegment)
	n := len(pool)
	if n == 0 {
		return out
	}
	for i := 0; i < perSegment && i < n; i++ {
		p := pool[((day-1)*perSegment+i)%n]
		name := p.Name
		if !known {
			name = interpolate(name, dest)
		}
		out = append(out, domain.Activity{
			Name:         name,
			Description:  p.Desc,
			Time:         segmentWindows[seg],
			Cost:         ActivityCost(tier, seg),
			Tip:          segmentTips[seg],
			ImageKeyword: name + " " + dest,
		})
	}
	return out
}

func genericHighlights(dest string) []string {
	return []string{
		fmt.Sprintf("Historic centre of %s", dest),
		fmt.Sprintf("Local cuisine of %s", dest),
		fmt.Sprintf("Markets and crafts of %s", dest),
	}
}

func interpolate(tpl, dest string) string {
	if strings.Contains(tpl, "%s") {
		return fmt.Sprintf(tpl, dest)
	}
	return tpl
}

func interpolateAll(tpls []string, dest string) []string {
	out := make([]string, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, interpolate(t, dest))
	}
	return out
}
