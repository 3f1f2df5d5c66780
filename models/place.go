// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// LatLng is a single geographic coordinate in latitude-then-longitude order.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatLngBounds is a bounding box described by its north-east and south-west
// corners.
type LatLngBounds struct {
	NE LatLng `json:"ne"`
	SW LatLng `json:"sw"`
}

// Place is the normalized representation of a geographic location that the
// marketplace front-end consumes. Origin and Bounds are nil when the provider
// did not return a usable value for them.
type Place struct {
	Address string        `json:"address"`
	Origin  *LatLng       `json:"origin"`
	Bounds  *LatLngBounds `json:"bounds"`
}

// Prediction is a single candidate returned by a forward geocoding search.
//
// Center and BBox are kept as raw JSON because the provider response is
// parsed permissively: a missing or malformed value is not a decoding error,
// it only means the derived Place field is nil. The complete source object is
// retained in raw so that MarshalJSON re-emits the prediction unmodified.
type Prediction struct {
	ID        string          `json:"id"`
	PlaceName string          `json:"place_name"`
	Center    json.RawMessage `json:"center,omitempty"`
	BBox      json.RawMessage `json:"bbox,omitempty"`

	raw json.RawMessage
}

// predictionFields mirrors Prediction without its methods so that decoding
// does not recurse into UnmarshalJSON. ID is decoded loosely because some
// providers send numeric identifiers.
type predictionFields struct {
	ID        json.RawMessage `json:"id"`
	PlaceName json.RawMessage `json:"place_name"`
	Center    json.RawMessage `json:"center"`
	BBox      json.RawMessage `json:"bbox"`
}

// UnmarshalJSON decodes a provider feature object. Only a non-object payload
// is an error; field-level type mismatches leave the field empty.
func (p *Prediction) UnmarshalJSON(b []byte) error {
	var f predictionFields
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("decode prediction: %w", err)
	}

	*p = Prediction{
		ID:        looseString(f.ID),
		PlaceName: looseString(f.PlaceName),
		Center:    nonNull(f.Center),
		BBox:      nonNull(f.BBox),
		raw:       append(json.RawMessage(nil), b...),
	}
	return nil
}

// MarshalJSON re-emits the original provider object when the prediction was
// decoded from one, and the known fields otherwise.
func (p Prediction) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}

	out := map[string]any{
		"id":         p.ID,
		"place_name": p.PlaceName,
	}
	if len(p.Center) > 0 {
		out["center"] = p.Center
	}
	if len(p.BBox) > 0 {
		out["bbox"] = p.BBox
	}
	return json.Marshal(out)
}

// SearchResult is the outcome of one forward geocoding search. Search holds
// the original query so callers can discard results of stale requests.
type SearchResult struct {
	Search      string       `json:"search"`
	Predictions []Prediction `json:"predictions"`
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func nonNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}
