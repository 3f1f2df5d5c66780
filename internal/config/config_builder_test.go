package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempFile(t, "config.json", string(data))
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultEnvFile, cfg.Configurator.EnvFile)
	assert.Equal(t, DefaultTemplateFile, cfg.Configurator.TemplateFile)
	assert.Equal(t, PromptDriverSurvey, cfg.Configurator.PromptDriver)
	assert.Equal(t, DefaultGeocoderBaseURL, cfg.Geocoder.BaseURL)
	assert.Equal(t, DefaultGeocoderLimit, cfg.Geocoder.Limit)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them intact.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Configurator: Configurator{EnvFile: "first.env"}},
		&StructuredConfig{Configurator: Configurator{EnvFile: "second.env"}, App: App{Version: "1.0.0"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second.env", cfg.Configurator.EnvFile)
	assert.Equal(t, DefaultTemplateFile, cfg.Configurator.TemplateFile)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// TestBuild_InvalidDriver verifies that validation runs on the merged result.
func TestBuild_InvalidDriver(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Configurator: Configurator{PromptDriver: "inquirer"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfiguratorConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("CONFIGURATOR_ENV_FILE", "/srv/app/.env")
	t.Setenv("GEOCODER_LIMIT", "3")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/srv/app/.env", b.configs[0].Configurator.EnvFile)
	assert.Equal(t, 3, b.configs[0].Geocoder.Limit)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion failures are
// collected on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("GEOCODER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"--no-such-flag"})

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.Version = "json-version"
	payload.Configurator.EnvFile = "json.env"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json.env", b.configs[1].Configurator.EnvFile)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// FilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: "/nonexistent/first.json"},
		&StructuredConfig{FilePath: path},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── getStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < file ordering.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "geocoder:\n  language: fi\n")

	t.Setenv("GEOCODER_LANGUAGE", "sv")
	t.Setenv("CONFIGURATOR_ENV_FILE", "env.env")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := getStructuredConfig([]string{"-e", "flag.env", "-c", path, "-check"})
	require.NoError(t, err)

	assert.Equal(t, "fi", cfg.Geocoder.Language)
	assert.Equal(t, "flag.env", cfg.Configurator.EnvFile)
	assert.True(t, cfg.Configurator.Check)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTemplateFile, cfg.Configurator.TemplateFile)
}

// TestGetStructuredConfig_MapboxTokenFallback verifies that the marketplace
// Mapbox variable is used when no geocoder token is configured.
func TestGetStructuredConfig_MapboxTokenFallback(t *testing.T) {
	t.Setenv("GEOCODER_ACCESS_TOKEN", "")
	t.Setenv("REACT_APP_MAPBOX_ACCESS_TOKEN", "pk.fallback")

	cfg, err := getStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "pk.fallback", cfg.Geocoder.AccessToken)

	t.Setenv("GEOCODER_ACCESS_TOKEN", "pk.explicit")
	cfg, err = getStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "pk.explicit", cfg.Geocoder.AccessToken)
}

// TestGetStructuredConfig_FileDisablesDefaultSearches verifies that an
// explicit false in the file wins over true from the environment.
func TestGetStructuredConfig_FileDisablesDefaultSearches(t *testing.T) {
	t.Setenv("GEOCODER_DEFAULT_SEARCHES_ENABLED", "true")
	t.Setenv("GEOCODER_DEFAULT_PREDICTIONS_FILE", "defaults.json")

	path := writeTempFile(t, "config.yaml", "geocoder:\n  default_searches_enabled: false\n")
	cfg, err := getStructuredConfig([]string{"-c", path})
	require.NoError(t, err)
	assert.False(t, cfg.Geocoder.DefaultSearchesEnabled)

	path = writeTempFile(t, "other.yaml", "geocoder:\n  language: fi\n")
	cfg, err = getStructuredConfig([]string{"-c", path})
	require.NoError(t, err)
	assert.True(t, cfg.Geocoder.DefaultSearchesEnabled, "an absent key keeps the env value")
}
