// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the settings every binary depends on. Component specific
// requirements, such as the geocoder access token, are checked by the views
// that need them.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Configurator.PromptDriver {
	case PromptDriverSurvey, PromptDriverTea:
	default:
		return fmt.Errorf("%w: unknown prompt driver %q", ErrInvalidConfiguratorConfigs, cfg.Configurator.PromptDriver)
	}

	if cfg.Geocoder.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidGeocoderConfigs, cfg.Geocoder.Limit)
	}

	return nil
}

func (cfg *ConfiguratorConfig) validate() error {
	if cfg.EnvFile == "" {
		return fmt.Errorf("%w: empty env file path", ErrInvalidConfiguratorConfigs)
	}
	if cfg.TemplateFile == "" {
		return fmt.Errorf("%w: empty template file path", ErrInvalidConfiguratorConfigs)
	}
	return nil
}

func (cfg *GeocoderConfig) validate() error {
	if cfg.Geocoder.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrInvalidGeocoderConfigs)
	}
	if cfg.Geocoder.BaseURL == "" || cfg.Geocoder.Limit == 0 || cfg.Geocoder.RequestTimeout <= 0 {
		return ErrInvalidGeocoderConfigs
	}
	if cfg.Geocoder.DefaultSearchesEnabled && cfg.Geocoder.DefaultPredictionsFile == "" {
		return fmt.Errorf("%w: default searches enabled without predictions file", ErrInvalidGeocoderConfigs)
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
