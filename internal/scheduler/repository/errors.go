package repository

import "errors"

var (
	ErrFailedToFetch   = errors.New("failed to fetch record")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrIncompleteTask  = errors.New("store response is missing required task fields")
	ErrInvalidResponse = errors.New("store response could not be decoded")
	// ErrMalformedPayload marks a recommendation body that decoded but is not a JSON object.
	ErrMalformedPayload = errors.New("recommendation payload is not an object")
)
