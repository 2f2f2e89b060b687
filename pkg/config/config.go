package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
)

const (
	xdgAppName = "hustlexp"
	configFile = "config.json"

	DefaultBaseURL = "https://api.hustlexp.app"
	DefaultTimeout = 8 * time.Second
)

type Config struct {
	Mode        source.Mode   `json:"mode" env:"HUSTLEXP_MODE"`
	BaseURL     string        `json:"base_url" env:"HUSTLEXP_BASE_URL"`
	Timeout     time.Duration `json:"timeout" env:"HUSTLEXP_TIMEOUT"`
	TokenFile   string        `json:"token_file,omitempty" env:"HUSTLEXP_TOKEN_FILE"`
	FixtureFile string        `json:"fixture_file,omitempty" env:"HUSTLEXP_FIXTURE_FILE"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Mode:    source.ModeLive,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

func GetConfigPath() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName, configFile), nil
}

// Load reads the config file at path, or the default location when path is
// empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	f, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, err
	default:
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Mode == "" {
		c.Mode = source.ModeLive
	}
	if _, err := source.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
