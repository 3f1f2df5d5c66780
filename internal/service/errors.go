package service

import "errors"

var (
	ErrEmptySearch        = errors.New("empty search")
	ErrNoGeocoderProvided = errors.New("no geocoder provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
