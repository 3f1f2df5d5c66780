package geocoder

import (
	"encoding/json"

	"github.com/MKhiriev/go-flex-kit/models"
)

// placeOrigin reads a Mapbox center, which is [longitude, latitude]. Anything
// other than exactly two numbers yields nil.
func placeOrigin(p models.Prediction) *models.LatLng {
	center, ok := numbers(p.Center, 2)
	if !ok {
		return nil
	}
	return &models.LatLng{Lat: center[1], Lng: center[0]}
}

// placeBounds reads a Mapbox bbox, which is [minX, minY, maxX, maxY].
// Anything other than exactly four numbers yields nil.
func placeBounds(p models.Prediction) *models.LatLngBounds {
	bbox, ok := numbers(p.BBox, 4)
	if !ok {
		return nil
	}
	return &models.LatLngBounds{
		NE: models.LatLng{Lat: bbox[3], Lng: bbox[2]},
		SW: models.LatLng{Lat: bbox[1], Lng: bbox[0]},
	}
}

// toPlace is the pure Prediction to Place projection.
func toPlace(p models.Prediction) models.Place {
	return models.Place{
		Address: p.PlaceName,
		Origin:  placeOrigin(p),
		Bounds:  placeBounds(p),
	}
}

func numbers(raw json.RawMessage, n int) ([]float64, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil || len(values) != n {
		return nil, false
	}
	return values, true
}
