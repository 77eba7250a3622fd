package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse marks an unrecoverable parse or validation failure. It is
// the only error ParseResponse returns; callers switch to the fallback
// path on it rather than surfacing it.
var ErrParse = errors.New("unusable model output")

var (
	reBareKey     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	reSingleQuote = regexp.MustCompile(`'([^'\\]*)'`)
	reBacktick    = regexp.MustCompile("`([^`]*)`")
	reTrailComma  = regexp.MustCompile(`,\s*([}\]])`)
)

// ParseResponse extracts, repairs and validates the JSON object in a
// raw model response. wantDays is the requested trip length; a response
// with any other day count is a validation failure.
func ParseResponse(raw string, wantDays int) (Draft, error) {
	candidate := extractJSON(raw)
	if candidate == "" {
		return Draft{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var d Draft
	if err := json.Unmarshal([]byte(candidate), &d); err != nil {
		// One bounded repair pass, then a single retry.
		if err2 := json.Unmarshal([]byte(repairJSON(candidate)), &d); err2 != nil {
			return Draft{}, fmt.Errorf("%w: %v", ErrParse, err2)
		}
	}

	if err := validateDraft(d, wantDays); err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return d, nil
}

// extractJSON drops fenced-code and comment lines, then returns the
// greedy outer-brace span. Empty string when no brace pair exists.
func extractJSON(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "```") || strings.HasPrefix(t, "//") {
			continue
		}
		kept = append(kept, line)
	}
	s := strings.Join(kept, "\n")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// repairJSON applies a bounded set of repairs for common model output
// defects: bare object keys, single/backtick-quoted strings, and
// trailing commas before closing brackets.
func repairJSON(s string) string {
	s = reBareKey.ReplaceAllString(s, `$1"$2":`)
	s = reSingleQuote.ReplaceAllString(s, `"$1"`)
	s = reBacktick.ReplaceAllString(s, `"$1"`)
	s = reTrailComma.ReplaceAllString(s, `$1`)
	return s
}

func validateDraft(d Draft, wantDays int) error {
	if strings.TrimSpace(d.Destination) == "" {
		return fmt.Errorf("missing destination")
	}
	if len(d.Days) == 0 {
		return fmt.Errorf("no days")
	}
	if wantDays > 0 && len(d.Days) != wantDays {
		return fmt.Errorf("expected %d days, got %d", wantDays, len(d.Days))
	}
	for i, day := range d.Days {
		if len(day.Morning) == 0 || len(day.Afternoon) == 0 || len(day.Evening) == 0 {
			return fmt.Errorf("day %d: morning, afternoon and evening must all be present", i+1)
		}
		for _, seg := range []ActivityList{day.Morning, day.Afternoon, day.Evening} {
			for _, a := range seg {
				if strings.TrimSpace(a.Name) == "" {
					return fmt.Errorf("day %d: activity without a name", i+1)
				}
			}
		}
	}
	return nil
}
