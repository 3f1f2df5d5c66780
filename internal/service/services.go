package service

import (
	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/geocoder"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/models"
)

type Services struct {
	PlaceService   PlaceService
	AppInfoService AppInfoService
}

// NewServices assembles the service layer. build supplies the reported
// version when the configuration leaves it empty.
func NewServices(g geocoder.Geocoder, cfg config.GeocoderConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	placeService, err := NewPlaceService(g, cfg.Geocoder, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PlaceService:   placeService,
		AppInfoService: appInfoService,
	}, nil
}
