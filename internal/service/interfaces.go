package service

import (
	"context"

	"github.com/MKhiriev/go-flex-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// PlaceService answers location autocomplete requests.
type PlaceService interface {
	// Predictions returns the predictions for search. An empty search yields
	// the default predictions when those are enabled, ErrEmptySearch
	// otherwise.
	Predictions(ctx context.Context, search string) (models.SearchResult, error)
	// Details resolves a prediction previously returned by Predictions.
	Details(ctx context.Context, prediction models.Prediction) (models.Place, error)
	// Defaults returns the default predictions, empty when disabled.
	Defaults(ctx context.Context) []models.Prediction
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
