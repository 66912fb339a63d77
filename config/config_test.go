package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/facade"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		TMDb:    TMDbConfig{APIKey: "valid-api-key"},
		Client:  ClientConfig{MaxConcurrent: 30, ThrowOnError: true},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: abc123
  language: de
client:
  max_concurrent: 5
  throw_on_error: false
transport:
  timeout: 10s
  rate_limit: 4
  burst: 2
filter:
  default: VoteAverage > 7
  presets:
    classics:
      expression: Year < 1980
      description: Old movies
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.TMDb.APIKey)
	assert.Equal(t, "de", cfg.TMDb.Language)
	assert.True(t, cfg.TMDb.UseTLS)
	assert.Equal(t, 5, cfg.Client.MaxConcurrent)
	assert.False(t, cfg.Client.ThrowOnError)
	assert.Equal(t, 10*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, 4.0, cfg.Transport.RateLimit)
	assert.Equal(t, 2, cfg.Transport.Burst)
	assert.Equal(t, "tmdbkit", cfg.Transport.UserAgent)
	assert.Equal(t, "VoteAverage > 7", cfg.Filter.DefaultExpression)
	assert.Equal(t, "Year < 1980", cfg.Filter.Presets["classics"].Expression)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "tmdb:\n  api_key: abc123\n"))
	require.NoError(t, err)

	assert.Equal(t, facade.DefaultMaxConcurrent, cfg.Client.MaxConcurrent)
	assert.True(t, cfg.Client.ThrowOnError)
	assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("TMDB_CLIENT_MAX_CONCURRENT", "7")
	t.Setenv("TMDB_LOGGING_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "tmdb:\n  api_key: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.TMDb.APIKey)
	assert.Equal(t, 7, cfg.Client.MaxConcurrent)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "tmdb:\n  api_key: abc\nclient:\n  max_concurrent: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client.max_concurrent")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "missing api key", modify: func(c *Config) { c.TMDb.APIKey = "" }, wantErr: "tmdb.api_key"},
		{name: "placeholder api key", modify: func(c *Config) { c.TMDb.APIKey = "your-api-key-here" }, wantErr: "tmdb.api_key"},
		{name: "bad base url", modify: func(c *Config) { c.TMDb.BaseURL = "ftp://example.com" }, wantErr: "tmdb.base_url"},
		{name: "relative base url", modify: func(c *Config) { c.TMDb.BaseURL = "/3" }, wantErr: "tmdb.base_url"},
		{name: "custom base url", modify: func(c *Config) { c.TMDb.BaseURL = "http://localhost:8080/3" }},
		{name: "zero concurrency", modify: func(c *Config) { c.Client.MaxConcurrent = 0 }, wantErr: "client.max_concurrent"},
		{name: "negative timeout", modify: func(c *Config) { c.Transport.Timeout = -time.Second }, wantErr: "transport.timeout"},
		{name: "negative rate", modify: func(c *Config) { c.Transport.RateLimit = -1 }, wantErr: "transport.rate_limit"},
		{name: "bad level", modify: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "logging level"},
		{name: "bad format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging format"},
		{name: "bad default filter", modify: func(c *Config) { c.Filter.DefaultExpression = "Year >" }, wantErr: "filter.default"},
		{
			name: "bad preset",
			modify: func(c *Config) {
				c.Filter.Presets = map[string]FilterPreset{"broken": {Expression: "Tagline == 1"}}
			},
			wantErr: `preset "broken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEndpointsDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.TMDb.UseTLS = true

	ec, err := cfg.Endpoints()
	require.NoError(t, err)

	assert.Equal(t, "valid-api-key", ec.APIKey)
	assert.Equal(t, endpoints.DefaultBaseURL, ec.BaseURL)
	assert.True(t, ec.UseTLS)
	assert.Equal(t, "movie/{0}", ec.Methods.Movie)
}

func TestEndpointsFromFile(t *testing.T) {
	saved := endpoints.Defaults("file-key")
	saved.BaseURL = "http://mirror.local/3"
	saved.Methods.Movie = "film/{0}"

	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, endpoints.Save(path, saved))

	cfg := validConfig()
	cfg.TMDb.EndpointsFile = path

	ec, err := cfg.Endpoints()
	require.NoError(t, err)

	assert.Equal(t, "valid-api-key", ec.APIKey)
	assert.Equal(t, "http://mirror.local/3", ec.BaseURL)
	assert.Equal(t, "film/{0}", ec.Methods.Movie)
	assert.False(t, ec.UseTLS)

	cfg.TMDb.EndpointsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Endpoints()
	assert.Error(t, err)
}
