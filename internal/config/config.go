// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Configurator holds the settings of the interactive .env configurator.
	Configurator Configurator `envPrefix:"CONFIGURATOR_"`

	// Geocoder holds the Mapbox geocoding client settings.
	Geocoder Geocoder `envPrefix:"GEOCODER_"`

	// Server holds network address and timeout settings for the places
	// HTTP service.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Configurator holds the settings of the interactive environment configurator.
type Configurator struct {
	// EnvFile is the path of the backing key=value file.
	// Env: CONFIGURATOR_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// TemplateFile is copied to EnvFile when EnvFile does not exist yet.
	// Env: CONFIGURATOR_TEMPLATE_FILE
	TemplateFile string `env:"TEMPLATE_FILE"`

	// PromptDriver selects the terminal implementation: "survey" or "tea".
	// Env: CONFIGURATOR_PROMPT_DRIVER
	PromptDriver string `env:"PROMPT_DRIVER"`

	// Verbose lowers the CLI log level from warn to debug.
	// Env: CONFIGURATOR_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// Check only verifies that EnvFile exists. Flag only (-check).
	Check bool
}

// Geocoder holds the settings of the Mapbox forward geocoding client.
type Geocoder struct {
	// AccessToken is the Mapbox access token. When empty it falls back to
	// REACT_APP_MAPBOX_ACCESS_TOKEN, the variable the marketplace .env uses.
	// Env: GEOCODER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// BaseURL is the Mapbox API root (e.g. "https://api.mapbox.com").
	// Env: GEOCODER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Limit is the maximum number of predictions per search.
	// Env: GEOCODER_LIMIT
	Limit int `env:"LIMIT"`

	// Language is the locale passed to the provider (e.g. "en").
	// Env: GEOCODER_LANGUAGE
	Language string `env:"LANGUAGE"`

	// RequestTimeout bounds a single outbound geocoding request.
	// Env: GEOCODER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DefaultPredictionsFile is an optional JSON file holding predictions
	// offered for an empty search.
	// Env: GEOCODER_DEFAULT_PREDICTIONS_FILE
	DefaultPredictionsFile string `env:"DEFAULT_PREDICTIONS_FILE"`

	// DefaultSearchesEnabled turns on the default predictions.
	// Env: GEOCODER_DEFAULT_SEARCHES_ENABLED
	DefaultSearchesEnabled bool `env:"DEFAULT_SEARCHES_ENABLED"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied when no source sets a value.
const (
	DefaultEnvFile          = ".env"
	DefaultTemplateFile     = ".env-template"
	DefaultPromptDriver     = PromptDriverSurvey
	DefaultGeocoderBaseURL  = "https://api.mapbox.com"
	DefaultGeocoderLimit    = 5
	DefaultGeocoderLanguage = "en"
	DefaultGeocoderTimeout  = 10 * time.Second
	DefaultServerAddress    = "localhost:8080"
	DefaultServerTimeout    = 30 * time.Second
	mapboxTokenFallbackEnv  = "REACT_APP_MAPBOX_ACCESS_TOKEN"
)

// Prompt driver names accepted by [Configurator.PromptDriver].
const (
	PromptDriverSurvey = "survey"
	PromptDriverTea    = "tea"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Configurator: Configurator{
			EnvFile:      DefaultEnvFile,
			TemplateFile: DefaultTemplateFile,
			PromptDriver: DefaultPromptDriver,
		},
		Geocoder: Geocoder{
			AccessToken:    os.Getenv(mapboxTokenFallbackEnv),
			BaseURL:        DefaultGeocoderBaseURL,
			Limit:          DefaultGeocoderLimit,
			Language:       DefaultGeocoderLanguage,
			RequestTimeout: DefaultGeocoderTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. Config file (path resolved from sources 1 and 2)
//
// Built-in defaults fill every field no source has set.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
