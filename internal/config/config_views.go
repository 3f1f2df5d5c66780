package config

import "fmt"

// ConfiguratorConfig is the configuration view used by the .env configurator.
type ConfiguratorConfig struct {
	Configurator
}

// GeocoderConfig is the configuration view used by the places service.
type GeocoderConfig struct {
	App      App
	Geocoder Geocoder
	Server   Server
}

// GetConfiguratorConfig builds and validates the configurator view of the
// merged structured configuration.
func GetConfiguratorConfig() (*ConfiguratorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ConfiguratorView()
}

// GetGeocoderConfig builds and validates the places service view of the
// merged structured configuration.
func GetGeocoderConfig() (*GeocoderConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.GeocoderView()
}

// ConfiguratorView maps the fields relevant to the configurator and
// validates them.
func (cfg *StructuredConfig) ConfiguratorView() (*ConfiguratorConfig, error) {
	view := &ConfiguratorConfig{Configurator: cfg.Configurator}
	if err := view.validate(); err != nil {
		return nil, err
	}
	return view, nil
}

// GeocoderView maps the fields relevant to the places service and validates
// them.
func (cfg *StructuredConfig) GeocoderView() (*GeocoderConfig, error) {
	view := &GeocoderConfig{
		App:      cfg.App,
		Geocoder: cfg.Geocoder,
		Server:   cfg.Server,
	}
	if err := view.validate(); err != nil {
		return nil, err
	}
	return view, nil
}
