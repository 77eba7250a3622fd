package export

import (
	"fmt"
	"strings"
	"time"

	"trip_planner/internal/domain"
)

// Fixed time-of-day anchors for calendar events.
const (
	morningStart   = 9 * time.Hour
	afternoonStart = 14 * time.Hour
	eveningStart   = 18 * time.Hour

	morningSpacing   = 2 * time.Hour
	afternoonSpacing = 2 * time.Hour
	eveningSpacing   = 90 * time.Minute

	breakfastStart = 8 * time.Hour
	lunchStart     = 13 * time.Hour
	dinnerStart    = 20 * time.Hour
	mealLength     = time.Hour
)

// Calendar renders the itinerary as an ICS feed anchored to start
// (normally today). Returns the bytes and the emitted event count so
// callers can verify the mapping.
func Calendar(it domain.Itinerary, start time.Time, path string) ([]byte, int, error) {
	day0 := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	stamp := day0.UTC().Format("20060102T150405Z")

	var b strings.Builder
	writeICSLine(&b, "BEGIN:VCALENDAR")
	writeICSLine(&b, "VERSION:2.0")
	writeICSLine(&b, "PRODID:-//"+appTag+"//itinerary//EN")
	writeICSLine(&b, "CALSCALE:GREGORIAN")

	count := 0
	for _, day := range it.Days {
		date := day0.AddDate(0, 0, day.Day-1)

		count += writeSegmentEvents(&b, it.Destination, date, day.Day, stamp, "morning", day.Activities.Morning, morningStart, morningSpacing, 2*time.Hour)
		count += writeSegmentEvents(&b, it.Destination, date, day.Day, stamp, "afternoon", day.Activities.Afternoon, afternoonStart, afternoonSpacing, 2*time.Hour)
		count += writeSegmentEvents(&b, it.Destination, date, day.Day, stamp, "evening", day.Activities.Evening, eveningStart, eveningSpacing, 90*time.Minute)

		count += writeMealEvent(&b, date, day.Day, stamp, "breakfast", day.Restaurants.Breakfast, breakfastStart)
		count += writeMealEvent(&b, date, day.Day, stamp, "lunch", day.Restaurants.Lunch, lunchStart)
		count += writeMealEvent(&b, date, day.Day, stamp, "dinner", day.Restaurants.Dinner, dinnerStart)
	}

	writeICSLine(&b, "END:VCALENDAR")

	data := []byte(b.String())
	if path != "" {
		if err := writeAtomic(path, data); err != nil {
			return nil, 0, err
		}
	}
	return data, count, nil
}

func writeSegmentEvents(b *strings.Builder, dest string, date time.Time, day int, stamp, seg string, acts []domain.Activity, first, spacing, length time.Duration) int {
	for i, a := range acts {
		begin := date.Add(first + time.Duration(i)*spacing)
		end := begin.Add(length)
		uid := fmt.Sprintf("day%d-%s-%d@%s", day, seg, i+1, appTag)

		writeICSLine(b, "BEGIN:VEVENT")
		writeICSLine(b, "UID:"+uid)
		writeICSLine(b, "DTSTAMP:"+stamp)
		writeICSLine(b, "DTSTART:"+begin.Format("20060102T150405"))
		writeICSLine(b, "DTEND:"+end.Format("20060102T150405"))
		writeICSLine(b, "SUMMARY:"+escapeICS(a.Name))
		if a.Description != "" {
			writeICSLine(b, "DESCRIPTION:"+escapeICS(a.Description))
		}
		if dest != "" {
			writeICSLine(b, "LOCATION:"+escapeICS(dest))
		}
		writeICSLine(b, "END:VEVENT")
	}
	return len(acts)
}

// writeMealEvent emits a single event per meal slot, only when there
// is at least one recommendation for it.
func writeMealEvent(b *strings.Builder, date time.Time, day int, stamp, meal string, places []string, at time.Duration) int {
	if len(places) == 0 {
		return 0
	}
	begin := date.Add(at)
	end := begin.Add(mealLength)
	uid := fmt.Sprintf("day%d-%s@%s", day, meal, appTag)

	writeICSLine(b, "BEGIN:VEVENT")
	writeICSLine(b, "UID:"+uid)
	writeICSLine(b, "DTSTAMP:"+stamp)
	writeICSLine(b, "DTSTART:"+begin.Format("20060102T150405"))
	writeICSLine(b, "DTEND:"+end.Format("20060102T150405"))
	writeICSLine(b, "SUMMARY:"+escapeICS(titleCase(meal)+" - "+places[0]))
	if len(places) > 1 {
		writeICSLine(b, "DESCRIPTION:"+escapeICS("Alternatives: "+strings.Join(places[1:], ", ")))
	}
	writeICSLine(b, "END:VEVENT")
	return 1
}

// writeICSLine appends a CRLF-terminated content line, folded at 75
// octets per RFC 5545.
func writeICSLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		cut := limit
		// don't split a UTF-8 sequence
		for cut > 0 && line[cut]&0xC0 == 0x80 {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
