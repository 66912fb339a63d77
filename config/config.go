package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/facade"
	"github.com/s0up4200/tmdbkit/filter"
)

// EnvPrefix prefixes environment overrides, e.g. TMDB_CLIENT_MAX_CONCURRENT.
const EnvPrefix = "TMDB"

// Load loads the configuration from file, the environment and a .env file in
// the working directory. A missing config file is only an error when
// configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tmdbkit"))
		}
		v.AddConfigPath("/etc/tmdbkit/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDb defaults
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "")
	v.SetDefault("tmdb.use_tls", true)
	v.SetDefault("tmdb.language", "")
	v.SetDefault("tmdb.endpoints_file", "")
	v.SetDefault("tmdb.session_id", "")

	// Client defaults
	v.SetDefault("client.max_concurrent", facade.DefaultMaxConcurrent)
	v.SetDefault("client.throw_on_error", true)

	// Transport defaults
	v.SetDefault("transport.timeout", 30*time.Second)
	v.SetDefault("transport.user_agent", "tmdbkit")
	v.SetDefault("transport.rate_limit", 0)
	v.SetDefault("transport.burst", 1)
	v.SetDefault("transport.breaker_failures", 0)
	v.SetDefault("transport.breaker_cooldown", 30*time.Second)

	// Filter defaults
	v.SetDefault("filter.default", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps TMDB_SECTION_KEY variables onto section.key, with TMDB_API_KEY
// and TMDB_SESSION_ID as shorthands.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("tmdb.api_key", EnvPrefix+"_API_KEY", EnvPrefix+"_TMDB_API_KEY")
	_ = v.BindEnv("tmdb.session_id", EnvPrefix+"_SESSION_ID", EnvPrefix+"_TMDB_SESSION_ID")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDb.APIKey == "" || cfg.TMDb.APIKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	if cfg.TMDb.BaseURL != "" {
		u, err := url.Parse(cfg.TMDb.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid tmdb.base_url: %s", cfg.TMDb.BaseURL)
		}
	}

	if cfg.Client.MaxConcurrent < 1 {
		return fmt.Errorf("client.max_concurrent must be at least 1, got %d", cfg.Client.MaxConcurrent)
	}

	if cfg.Transport.Timeout < 0 {
		return fmt.Errorf("transport.timeout must not be negative")
	}
	if cfg.Transport.RateLimit < 0 {
		return fmt.Errorf("transport.rate_limit must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	// Filters must compile
	if cfg.Filter.DefaultExpression != "" {
		if _, err := filter.Compile(cfg.Filter.DefaultExpression); err != nil {
			return fmt.Errorf("invalid filter.default: %w", err)
		}
	}
	for name, preset := range cfg.Filter.Presets {
		if _, err := filter.Compile(preset.Expression); err != nil {
			return fmt.Errorf("invalid filter preset %q: %w", name, err)
		}
	}

	return nil
}

// Endpoints returns the endpoint configuration to use: the file named by
// tmdb.endpoints_file, or the built-in defaults. The configured API key,
// base URL and TLS setting are applied on top.
func (c *Config) Endpoints() (endpoints.Config, error) {
	var ec endpoints.Config
	if c.TMDb.EndpointsFile != "" {
		loaded, err := endpoints.Load(c.TMDb.EndpointsFile)
		if err != nil {
			return endpoints.Config{}, err
		}
		ec = loaded
	} else {
		ec = endpoints.Defaults("")
	}

	if c.TMDb.APIKey != "" {
		ec.APIKey = c.TMDb.APIKey
	}
	if c.TMDb.BaseURL != "" {
		ec.BaseURL = c.TMDb.BaseURL
	}
	ec.UseTLS = c.TMDb.UseTLS

	return ec, nil
}
