package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDb      TMDbConfig      `mapstructure:"tmdb"`
	Client    ClientConfig    `mapstructure:"client"`
	Transport TransportConfig `mapstructure:"transport"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// TMDbConfig holds TMDb API connection details
type TMDbConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	UseTLS   bool   `mapstructure:"use_tls"`
	Language string `mapstructure:"language"`
	// EndpointsFile points at a YAML endpoint configuration written by
	// "endpoints dump". Empty means built-in defaults.
	EndpointsFile string `mapstructure:"endpoints_file"`
	SessionID     string `mapstructure:"session_id"`
}

// ClientConfig configures the facade
type ClientConfig struct {
	MaxConcurrent int  `mapstructure:"max_concurrent"`
	ThrowOnError  bool `mapstructure:"throw_on_error"`
}

// TransportConfig tunes the HTTP transport
type TransportConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	UserAgent       string        `mapstructure:"user_agent"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second, 0 disables
	Burst           int           `mapstructure:"burst"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"` // 0 disables
	BreakerCooldown time.Duration `mapstructure:"breaker_cooldown"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default"`
	Presets           map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named filter expression
type FilterPreset struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// MetricsConfig contains metrics settings
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
