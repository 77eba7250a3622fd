package domain

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
	ErrRateLimited = errors.New("rate limited")

	// ErrGenerationFailed means both the AI and fallback paths were
	// unusable. The fallback path has no external dependency, so this
	// should not occur in practice.
	ErrGenerationFailed = errors.New("itinerary generation failed")
)
