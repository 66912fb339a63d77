package endpoints

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Serialize encodes the whole configuration. Every field is written, empty
// strings included, so Deserialize can restore it exactly.
func Serialize(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode endpoint configuration: %w", err)
	}
	return data, nil
}

// Deserialize decodes a configuration written by Serialize. Fields missing
// from the text are left empty; present fields keep their exact value.
func Deserialize(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode endpoint configuration: %w", err)
	}
	return cfg, nil
}

// Load reads a persisted configuration from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read endpoint configuration: %w", err)
	}
	return Deserialize(data)
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := Serialize(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write endpoint configuration: %w", err)
	}
	return nil
}
