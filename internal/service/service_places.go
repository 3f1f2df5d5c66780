package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/geocoder"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/models"
)

type placeService struct {
	geocoder        geocoder.Geocoder
	defaultsEnabled bool

	logger *logger.Logger
}

func NewPlaceService(g geocoder.Geocoder, cfg config.Geocoder, logger *logger.Logger) (PlaceService, error) {
	if g == nil {
		return nil, ErrNoGeocoderProvided
	}

	return &placeService{
		geocoder:        g,
		defaultsEnabled: cfg.DefaultSearchesEnabled,
		logger:          logger,
	}, nil
}

func (s *placeService) Predictions(ctx context.Context, search string) (models.SearchResult, error) {
	log := logger.FromContext(ctx)

	query := strings.TrimSpace(search)
	if query == "" {
		if !s.defaultsEnabled {
			return models.SearchResult{}, ErrEmptySearch
		}
		return models.SearchResult{Search: search, Predictions: s.Defaults(ctx)}, nil
	}

	result, err := s.geocoder.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("search", search).Msg("geocoder search failed")
		return models.SearchResult{}, fmt.Errorf("search %q: %w", search, err)
	}

	// callers correlate responses by the exact text they sent
	result.Search = search
	return result, nil
}

func (s *placeService) Details(ctx context.Context, prediction models.Prediction) (models.Place, error) {
	place, err := s.geocoder.PlaceDetails(ctx, prediction)
	if err != nil {
		return models.Place{}, fmt.Errorf("details of %q: %w", s.geocoder.PredictionID(prediction), err)
	}
	return place, nil
}

func (s *placeService) Defaults(_ context.Context) []models.Prediction {
	if !s.defaultsEnabled {
		return []models.Prediction{}
	}

	defaults := s.geocoder.DefaultPredictions()
	if defaults == nil {
		return []models.Prediction{}
	}
	return defaults
}
