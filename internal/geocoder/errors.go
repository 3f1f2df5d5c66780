package geocoder

import "errors"

var (
	ErrBadRequest          = errors.New("bad geocoding request")
	ErrUnauthorized        = errors.New("geocoding access token rejected")
	ErrForbidden           = errors.New("geocoding access forbidden")
	ErrNotFound            = errors.New("geocoding endpoint not found")
	ErrRateLimited         = errors.New("geocoding rate limit exceeded")
	ErrBadGateway          = errors.New("geocoding provider unavailable")
	ErrInternalServerError = errors.New("geocoding provider internal error")

	// ErrInvalidBaseURL is returned by [NewMapboxGeocoder] when the
	// configured provider URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid geocoder base url")
	// ErrDefaultPredictions is returned when the default predictions file
	// cannot be read or decoded.
	ErrDefaultPredictions = errors.New("error loading default predictions")
)
