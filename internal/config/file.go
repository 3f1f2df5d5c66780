package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Configurator struct {
		EnvFile      string `json:"env_file" yaml:"env_file"`
		TemplateFile string `json:"template_file" yaml:"template_file"`
		PromptDriver string `json:"prompt_driver" yaml:"prompt_driver"`
	} `json:"configurator,omitempty" yaml:"configurator,omitempty"`

	Geocoder struct {
		AccessToken            string   `json:"access_token" yaml:"access_token"`
		BaseURL                string   `json:"base_url" yaml:"base_url"`
		Limit                  int      `json:"limit" yaml:"limit"`
		Language               string   `json:"language" yaml:"language"`
		RequestTimeout         Duration `json:"request_timeout" yaml:"request_timeout"`
		DefaultPredictionsFile string   `json:"default_predictions_file" yaml:"default_predictions_file"`
		DefaultSearchesEnabled *bool    `json:"default_searches_enabled" yaml:"default_searches_enabled"`
	} `json:"geocoder,omitempty" yaml:"geocoder,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`
}

// parseFile decodes the config file at path into a [StructuredConfig].
func parseFile(path string) (*StructuredConfig, error) {
	fileCfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return fileCfg.structured(), nil
}

// decodeFile reads the config file at path. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func decodeFile(path string) (StructuredFileConfig, error) {
	var fileCfg StructuredFileConfig

	content, err := os.ReadFile(path)
	if err != nil {
		return fileCfg, fmt.Errorf("error reading a config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(content, &fileCfg); err != nil {
			return fileCfg, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(content, &fileCfg); err != nil {
			return fileCfg, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg, nil
}

// explicitBools assigns the booleans the file sets explicitly. A merge skips
// false values, so a file could not otherwise switch off a flag enabled by
// an earlier source.
func (fileCfg StructuredFileConfig) explicitBools(cfg *StructuredConfig) {
	if v := fileCfg.Geocoder.DefaultSearchesEnabled; v != nil {
		cfg.Geocoder.DefaultSearchesEnabled = *v
	}
}

func (fileCfg StructuredFileConfig) structured() *StructuredConfig {
	var defaultSearchesEnabled bool
	if v := fileCfg.Geocoder.DefaultSearchesEnabled; v != nil {
		defaultSearchesEnabled = *v
	}

	return &StructuredConfig{
		App: App{
			Version: fileCfg.App.Version,
		},
		Configurator: Configurator{
			EnvFile:      fileCfg.Configurator.EnvFile,
			TemplateFile: fileCfg.Configurator.TemplateFile,
			PromptDriver: fileCfg.Configurator.PromptDriver,
		},
		Geocoder: Geocoder{
			AccessToken:            fileCfg.Geocoder.AccessToken,
			BaseURL:                fileCfg.Geocoder.BaseURL,
			Limit:                  fileCfg.Geocoder.Limit,
			Language:               fileCfg.Geocoder.Language,
			RequestTimeout:         time.Duration(fileCfg.Geocoder.RequestTimeout),
			DefaultPredictionsFile: fileCfg.Geocoder.DefaultPredictionsFile,
			DefaultSearchesEnabled: defaultSearchesEnabled,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
