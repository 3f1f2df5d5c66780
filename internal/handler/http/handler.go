package http

import (
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/service"
)

// Handler serves the places and version endpoints on top of the service
// layer.
type Handler struct {
	places  service.PlaceService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{logger: logger}
	if services != nil {
		h.places = services.PlaceService
		h.appInfo = services.AppInfoService
	}

	logger.Info().
		Bool("places", h.places != nil).
		Bool("app_info", h.appInfo != nil).
		Msg("http handler created")
	return h
}
