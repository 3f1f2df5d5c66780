package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags in args (without the program
// name) into a partial [StructuredConfig].
//
// Flags:
//
//	-check only verify that the env file exists
//	-v verbose configurator logging
//	-e env file path
//	-t env template file path
//	-driver prompt driver ("survey" or "tea")
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-access-token Mapbox access token
//	-geocoder-timeout outbound geocoding timeout (e.g., "10s")
//	-c/-config JSON or YAML file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-flex-kit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var check, verbose bool
	var envFile, templateFile, promptDriver string
	var configPath string
	var accessToken string
	var requestTimeout, geocoderTimeout time.Duration

	fs.BoolVar(&check, "check", false, "Only check that the env file exists")
	fs.BoolVar(&verbose, "v", false, "Verbose configurator logging")
	fs.StringVar(&envFile, "e", "", "Env file path")
	fs.StringVar(&templateFile, "t", "", "Env template file path")
	fs.StringVar(&promptDriver, "driver", "", "Prompt driver (survey, tea)")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&accessToken, "access-token", "", "Mapbox access token")
	fs.DurationVar(&geocoderTimeout, "geocoder-timeout", 0, "Geocoding request timeout (e.g., 10s)")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		Configurator: Configurator{
			EnvFile:      envFile,
			TemplateFile: templateFile,
			PromptDriver: promptDriver,
			Verbose:      verbose,
			Check:        check,
		},
		Geocoder: Geocoder{
			AccessToken:    accessToken,
			RequestTimeout: geocoderTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
