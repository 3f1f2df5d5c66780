package main

import (
	"fmt"

	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/geocoder"
	myHTTP "github.com/MKhiriev/go-flex-kit/internal/handler/http"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/server"
	"github.com/MKhiriev/go-flex-kit/internal/service"
	"github.com/MKhiriev/go-flex-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("go-flex-geocoder")
	cfg, err := config.GetGeocoderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	g, err := geocoder.NewMapboxGeocoder(cfg.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}

	services, err := service.NewServices(g, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(myHTTP.NewHandler(services, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
