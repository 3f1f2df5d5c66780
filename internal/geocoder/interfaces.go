// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package geocoder provides forward geocoding (place name to coordinates)
// for the marketplace location search.
//
// The primary abstraction is [Geocoder]. The package ships a Mapbox
// implementation ([NewMapboxGeocoder]) that issues one request per search and
// translates Mapbox features into [models.Place] values.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package geocoder

import (
	"context"

	"github.com/MKhiriev/go-flex-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/geocoder_mock.go -package=mock

// Geocoder searches places by name and normalizes provider predictions.
type Geocoder interface {
	// Search issues one request to the provider and returns its predictions
	// unmodified, tagged with the original query.
	Search(ctx context.Context, query string) (models.SearchResult, error)

	// PredictionID returns the provider identifier of p.
	PredictionID(p models.Prediction) string

	// PredictionAddress returns the display address of p.
	PredictionAddress(p models.Prediction) string

	// PlaceDetails converts p into a [models.Place]. Providers that need a
	// follow-up lookup may block; the Mapbox implementation does not.
	PlaceDetails(ctx context.Context, p models.Prediction) (models.Place, error)

	// DefaultPredictions returns the predictions offered before the user has
	// typed anything. The result is empty unless configured.
	DefaultPredictions() []models.Prediction
}
