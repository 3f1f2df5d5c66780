package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-flex-kit/internal/geocoder"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/mock"
	"github.com/MKhiriev/go-flex-kit/internal/service"
	"github.com/MKhiriev/go-flex-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const helsinkiJSON = `{"id":"place.1","place_name":"Helsinki, Finland","relevance":1,"center":[24.9,60.1],"bbox":[24.8,60.0,25.0,60.2]}`

func newTestRouter(t *testing.T) (http.Handler, *mock.MockPlaceService, *mock.MockAppInfoService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	places := mock.NewMockPlaceService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{PlaceService: places, AppInfoService: appInfo}, logger.Nop())
	return h.Init(), places, appInfo
}

func decodePrediction(t *testing.T, src string) models.Prediction {
	t.Helper()
	var p models.Prediction
	require.NoError(t, json.Unmarshal([]byte(src), &p))
	return p
}

// ---- GET /api/places/predictions ----

func TestPredictions_OK(t *testing.T) {
	router, places, _ := newTestRouter(t)
	p := decodePrediction(t, helsinkiJSON)

	places.EXPECT().Predictions(gomock.Any(), "helsinki").
		Return(models.SearchResult{Search: "helsinki", Predictions: []models.Prediction{p}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/places/predictions?search=helsinki", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"search":"helsinki","predictions":[`+helsinkiJSON+`]}`, rec.Body.String())
}

func TestPredictions_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "empty search", err: service.ErrEmptySearch, wantStatus: http.StatusBadRequest, wantBody: "empty search"},
		{name: "rate limited", err: geocoder.ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "bad token", err: geocoder.ErrUnauthorized, wantStatus: http.StatusBadGateway, wantBody: "error getting predictions"},
		{name: "unknown", err: io.ErrUnexpectedEOF, wantStatus: http.StatusInternalServerError, wantBody: "error getting predictions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, places, _ := newTestRouter(t)
			places.EXPECT().Predictions(gomock.Any(), gomock.Any()).Return(models.SearchResult{}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/places/predictions", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantBody, body["error"])
			}
		})
	}
}

// ---- POST /api/places/details ----

func TestDetails_OK(t *testing.T) {
	router, places, _ := newTestRouter(t)
	want := models.Place{
		Address: "Helsinki, Finland",
		Origin:  &models.LatLng{Lat: 60.1, Lng: 24.9},
		Bounds: &models.LatLngBounds{
			NE: models.LatLng{Lat: 60.2, Lng: 25.0},
			SW: models.LatLng{Lat: 60.0, Lng: 24.8},
		},
	}

	places.EXPECT().Details(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Prediction) (models.Place, error) {
			assert.Equal(t, "place.1", p.ID)
			assert.JSONEq(t, `[24.9,60.1]`, string(p.Center))
			return want, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/places/details", strings.NewReader(helsinkiJSON))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"address":"Helsinki, Finland","origin":{"lat":60.1,"lng":24.9},"bounds":{"ne":{"lat":60.2,"lng":25},"sw":{"lat":60,"lng":24.8}}}`,
		rec.Body.String())
}

func TestDetails_InvalidJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/places/details", strings.NewReader(`{"id":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errInvalidJSON.Error())
}

func TestDetails_BBoxOnlyPrediction(t *testing.T) {
	router, places, _ := newTestRouter(t)
	places.EXPECT().
		Details(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Prediction) (models.Place, error) {
			assert.Equal(t, "x", p.ID)
			assert.JSONEq(t, `[24.8,60.0,25.0,60.2]`, string(p.BBox))
			return models.Place{Bounds: &models.LatLngBounds{
				NE: models.LatLng{Lat: 60.2, Lng: 25.0},
				SW: models.LatLng{Lat: 60.0, Lng: 24.8},
			}}, nil
		})

	body := `{"id":"x","bbox":[24.8,60.0,25.0,60.2]}`
	req := httptest.NewRequest(http.MethodPost, "/api/places/details", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"address":"","origin":null,"bounds":{"ne":{"lat":60.2,"lng":25},"sw":{"lat":60,"lng":24.8}}}`, rec.Body.String())
}

func TestDetails_WrongMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/places/details", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// ---- GET /api/places/defaults ----

func TestDefaults(t *testing.T) {
	router, places, _ := newTestRouter(t)
	places.EXPECT().Defaults(gomock.Any()).Return([]models.Prediction{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/places/defaults", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDefaults_Gzipped(t *testing.T) {
	router, places, _ := newTestRouter(t)
	places.EXPECT().Defaults(gomock.Any()).Return([]models.Prediction{decodePrediction(t, helsinkiJSON)})

	req := httptest.NewRequest(http.MethodGet, "/api/places/defaults", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, `[`+helsinkiJSON+`]`, string(body))
}

// ---- GET /api/version/ ----

func TestGetServerVersion_ViaRouter(t *testing.T) {
	router, _, appInfo := newTestRouter(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3-beta+build.42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3-beta+build.42", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestUnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

// ---- error table ----

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(geocoder.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFromError(errInvalidJSON))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(io.EOF))
}
