package export

import (
	"fmt"
	"strings"

	"trip_planner/internal/domain"
)

// Text renders the itinerary as plain text: same content as the PDF,
// no pagination, headings underlined with repeated characters.
func Text(it domain.Itinerary, path string) ([]byte, error) {
	var b strings.Builder

	title := fmt.Sprintf("%d-Day Itinerary: %s", it.Duration, it.Destination)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Budget: %s\n", it.Budget)
	fmt.Fprintf(&b, "Total Cost: %s\n", it.TotalCost)
	if it.Overview.BestTime != "" {
		fmt.Fprintf(&b, "Best Time to Visit: %s\n", it.Overview.BestTime)
	}
	if it.Overview.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", it.Overview.Summary)
	}
	b.WriteString("\n")

	for _, day := range it.Days {
		fmt.Fprintf(&b, "Day %d: %s\n", day.Day, day.Theme)
		b.WriteString(strings.Repeat("-", 30) + "\n")

		writeActivitySection(&b, "MORNING:", day.Activities.Morning)
		writeActivitySection(&b, "AFTERNOON:", day.Activities.Afternoon)
		writeActivitySection(&b, "EVENING:", day.Activities.Evening)

		dining := append(append(append([]string(nil),
			day.Restaurants.Breakfast...),
			day.Restaurants.Lunch...),
			day.Restaurants.Dinner...)
		writeListSection(&b, "DINING:", dining)
		writeListSection(&b, "STAY:", day.Accommodation)
		writeListSection(&b, "GETTING AROUND:", day.Transport)

		if day.EstimatedCost != "" {
			fmt.Fprintf(&b, "Estimated cost: %s\n", day.EstimatedCost)
		}
		b.WriteString("\n")
	}

	writeListSection(&b, "HIGHLIGHTS:", it.Highlights)
	writeListSection(&b, "LOCAL TIPS:", it.LocalTips)

	data := []byte(b.String())
	if path != "" {
		if err := writeAtomic(path, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func writeActivitySection(b *strings.Builder, header string, acts []domain.Activity) {
	if len(acts) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for _, a := range acts {
		line := a.Name
		if a.Time != "" {
			line += " (" + a.Time + ")"
		}
		if a.Cost != "" {
			line += " - " + a.Cost
		}
		fmt.Fprintf(b, "  • %s\n", line)
		if a.Description != "" {
			fmt.Fprintf(b, "    %s\n", a.Description)
		}
	}
}

func writeListSection(b *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for _, it := range items {
		fmt.Fprintf(b, "  • %s\n", it)
	}
}
