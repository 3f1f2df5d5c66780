package config

import "errors"

// Errors returned while loading and validating configuration.
var (
	// ErrInvalidFlags indicates that the command line could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidConfiguratorConfigs indicates invalid configurator settings
	// (for example, an empty env file path or unknown prompt driver).
	ErrInvalidConfiguratorConfigs = errors.New("invalid configurator configuration")
	// ErrInvalidGeocoderConfigs indicates invalid geocoder settings
	// (for example, missing access token or non-positive limit).
	ErrInvalidGeocoderConfigs = errors.New("invalid geocoder configuration")
	// ErrInvalidServerConfigs indicates invalid places service settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
