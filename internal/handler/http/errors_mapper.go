package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flex-kit/internal/geocoder"
	"github.com/MKhiriev/go-flex-kit/internal/service"
)

var errorStatusMap = map[error]int{
	errInvalidJSON: http.StatusBadRequest,

	service.ErrEmptySearch: http.StatusBadRequest,

	geocoder.ErrBadRequest:          http.StatusBadRequest,
	geocoder.ErrNotFound:            http.StatusNotFound,
	geocoder.ErrRateLimited:         http.StatusTooManyRequests,
	geocoder.ErrUnauthorized:        http.StatusBadGateway,
	geocoder.ErrForbidden:           http.StatusBadGateway,
	geocoder.ErrBadGateway:          http.StatusBadGateway,
	geocoder.ErrInternalServerError: http.StatusBadGateway,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
