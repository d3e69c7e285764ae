package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "fluxo.yaml"

// Config represents the top-level fluxo.yaml configuration.
type Config struct {
	// Ledger is the path of the current ledger file. Relative paths are
	// resolved against the working directory.
	Ledger   string `yaml:"ledger"`
	Currency string `yaml:"currency"`
}

// Load reads a fluxo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if strings.TrimSpace(cfg.Ledger) == "" {
		return nil, fmt.Errorf("parsing config: ledger path is empty")
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the default ledger file and currency.
func Default() *Config {
	return &Config{
		Ledger:   "movimentos.xlsx",
		Currency: "BRL",
	}
}
