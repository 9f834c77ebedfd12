package policy

import "errors"

var (
	ErrMalformedRecommendation = errors.New("malformed recommendation")
	ErrMissingTaskID           = errors.New("recommendation has no task id")
	ErrInvalidConfidence       = errors.New("recommendation confidence is not a finite number")
)
