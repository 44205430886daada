package utils

import "errors"

var (
	ErrInvalidInput = errors.New("invalid trip request")
	ErrInvalidDraft = errors.New("draft missing usable days")
	ErrNoItinerary  = errors.New("no itinerary could be produced")
)
