package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"trip_planner/internal/domain"
)

// PDF produces the paginated document: title, trip summary, one block
// per day with empty sections omitted, and a tips appendix page.
func PDF(it domain.Itinerary, path string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, pdfSafe(fmt.Sprintf("%d-Day Itinerary: %s", it.Duration, it.Destination)))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	summaryLine(pdf, "Budget", string(it.Budget))
	summaryLine(pdf, "Total Cost", it.TotalCost)
	summaryLine(pdf, "Best Time to Visit", it.Overview.BestTime)
	if len(it.Interests) > 0 {
		summaryLine(pdf, "Interests", strings.Join(it.Interests, ", "))
	}
	if it.Overview.Summary != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, pdfSafe(it.Overview.Summary), "", "L", false)
	}
	pdf.Ln(4)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, pdfSafe(fmt.Sprintf("Day %d: %s", day.Day, day.Theme)))
		pdf.Ln(11)

		pdfActivitySection(pdf, "Morning", day.Activities.Morning)
		pdfActivitySection(pdf, "Afternoon", day.Activities.Afternoon)
		pdfActivitySection(pdf, "Evening", day.Activities.Evening)

		dining := append(append(append([]string(nil),
			day.Restaurants.Breakfast...),
			day.Restaurants.Lunch...),
			day.Restaurants.Dinner...)
		pdfListSection(pdf, "Dining", dining)
		pdfListSection(pdf, "Stay", day.Accommodation)
		pdfListSection(pdf, "Getting Around", day.Transport)

		if day.EstimatedCost != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 7, pdfSafe("Estimated cost: "+day.EstimatedCost))
			pdf.Ln(10)
		}
	}

	if len(it.LocalTips) > 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Local Tips")
		pdf.Ln(11)
		pdf.SetFont("Arial", "", 11)
		for _, tip := range it.LocalTips {
			pdf.MultiCell(0, 6, pdfSafe("- "+tip), "", "L", false)
			pdf.Ln(1)
		}
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 10, pdfSafe(fmt.Sprintf("Generated by %s", appTag)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	data := buf.Bytes()
	if path != "" {
		if err := writeAtomic(path, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func summaryLine(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(45, 7, label)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, pdfSafe(value))
	pdf.Ln(7)
}

func pdfActivitySection(pdf *gofpdf.Fpdf, header string, acts []domain.Activity) {
	if len(acts) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, header)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, a := range acts {
		line := a.Name
		if a.Time != "" {
			line += " (" + a.Time + ")"
		}
		if a.Cost != "" {
			line += " - " + a.Cost
		}
		pdf.MultiCell(0, 6, pdfSafe("- "+line), "", "L", false)
		if a.Description != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, pdfSafe("  "+a.Description), "", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
	}
	pdf.Ln(2)
}

func pdfListSection(pdf *gofpdf.Fpdf, header string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, header)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, it := range items {
		pdf.MultiCell(0, 6, pdfSafe("- "+it), "", "L", false)
	}
	pdf.Ln(2)
}

// pdfSafe replaces glyphs outside the core cp1252 fonts; the rupee
// sign in particular is not available.
func pdfSafe(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}
