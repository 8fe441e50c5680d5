// Package config loads client configuration from a YAML file with
// environment-variable overrides for secrets, so credential material stays
// out of checked-in files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/starkbot/gostark/pkg/logger"
)

// Config is the full client configuration.
type Config struct {
	Host    string `yaml:"host"`
	Network int    `yaml:"network"`

	// Credentials. Normally supplied via environment:
	// STARK_API_KEY, STARK_API_SECRET, STARK_API_PASSPHRASE.
	APIKey        string `yaml:"api_key"`
	APISecret     string `yaml:"api_secret"`
	APIPassphrase string `yaml:"api_passphrase"`

	// L2 signing key, via STARK_PRIVATE_KEY. Optional: without it the
	// client can only submit pre-signed actions.
	StarkPrivateKey string `yaml:"stark_private_key"`

	PositionID int64 `yaml:"position_id"`

	Logging logger.Config `yaml:"logging"`
}

// Load reads the YAML file at path (optional), loads .env if present, and
// applies environment overrides.
func Load(path string) (*Config, error) {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host:    "https://api.stark.exchange",
		Network: 1,
		Logging: logger.Config{Level: "info"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STARK_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("STARK_NETWORK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Network = n
		}
	}
	if v := os.Getenv("STARK_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("STARK_API_SECRET"); v != "" {
		cfg.APISecret = v
	}
	if v := os.Getenv("STARK_API_PASSPHRASE"); v != "" {
		cfg.APIPassphrase = v
	}
	if v := os.Getenv("STARK_PRIVATE_KEY"); v != "" {
		cfg.StarkPrivateKey = v
	}
	if v := os.Getenv("STARK_POSITION_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.PositionID = id
		}
	}
}
