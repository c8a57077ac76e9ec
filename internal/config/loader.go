package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the server configuration. Values come from environment
// variables, then the YAML file named by CONFIG_PATH (or ./config.yaml when
// present), then env-default tags. A CONFIG_PATH that points nowhere is an
// error; a missing ./config.yaml is not.
func Load() (*Config, error) {
	path, required := resolvePath()

	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		cfg, err = loadEnv()
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path, overlays the environment and validates the result.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

func resolvePath() (path string, required bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
