package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/utils"
	"github.com/MKhiriev/go-flex-kit/models"
)

const forwardGeocodePath = "/geocoding/v5/mapbox.places/{query}.json"

type mapboxGeocoder struct {
	client *utils.HTTPClient

	accessToken string
	limit       int
	language    string
	defaults    []models.Prediction

	logger *logger.Logger
}

type forwardGeocodeResponse struct {
	Features []models.Prediction `json:"features"`
}

// NewMapboxGeocoder constructs a Mapbox implementation of [Geocoder].
// It normalises and validates cfg.BaseURL, configures the underlying HTTP
// client with the request timeout and, when default searches are enabled,
// loads the default predictions from cfg.DefaultPredictionsFile.
//
// Returns an error if the base URL is unusable or the default predictions
// cannot be loaded.
func NewMapboxGeocoder(cfg config.Geocoder, logger *logger.Logger) (Geocoder, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	var defaults []models.Prediction
	if cfg.DefaultSearchesEnabled {
		if defaults, err = LoadDefaultPredictions(cfg.DefaultPredictionsFile); err != nil {
			return nil, err
		}
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	limit := cfg.Limit
	if limit <= 0 {
		limit = config.DefaultGeocoderLimit
	}

	logger.Info().
		Str("base_url", baseURL).
		Int("limit", limit).
		Int("default_predictions", len(defaults)).
		Msg("mapbox geocoder created")

	return &mapboxGeocoder{
		client:      client,
		accessToken: cfg.AccessToken,
		limit:       limit,
		language:    cfg.Language,
		defaults:    defaults,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [Geocoder]. It GETs the forward geocoding endpoint for
// query and returns the response features unmodified.
func (m *mapboxGeocoder) Search(ctx context.Context, query string) (models.SearchResult, error) {
	req := m.client.R().
		SetContext(ctx).
		SetPathParam("query", query).
		SetQueryParam("access_token", m.accessToken).
		SetQueryParam("limit", strconv.Itoa(m.limit))
	if m.language != "" {
		req.SetQueryParam("language", m.language)
	}

	resp, err := req.Get(forwardGeocodePath)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("forward geocode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	var body forwardGeocodeResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.SearchResult{}, fmt.Errorf("decode forward geocode response: %w", err)
	}
	if body.Features == nil {
		body.Features = []models.Prediction{}
	}

	m.logger.Debug().
		Str("search", query).
		Int("predictions", len(body.Features)).
		Dur("duration", resp.Time()).
		Msg("forward geocode done")

	return models.SearchResult{Search: query, Predictions: body.Features}, nil
}

// PredictionID implements [Geocoder].
func (m *mapboxGeocoder) PredictionID(p models.Prediction) string {
	return p.ID
}

// PredictionAddress implements [Geocoder].
func (m *mapboxGeocoder) PredictionAddress(p models.Prediction) string {
	return p.PlaceName
}

// PlaceDetails implements [Geocoder]. Mapbox features already carry
// everything a place needs, so no request is made.
func (m *mapboxGeocoder) PlaceDetails(ctx context.Context, p models.Prediction) (models.Place, error) {
	if err := ctx.Err(); err != nil {
		return models.Place{}, err
	}
	return toPlace(p), nil
}

// DefaultPredictions implements [Geocoder].
func (m *mapboxGeocoder) DefaultPredictions() []models.Prediction {
	out := make([]models.Prediction, len(m.defaults))
	copy(out, m.defaults)
	return out
}
