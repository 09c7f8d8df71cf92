// Package config loads and saves salescast preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/forecast"
)

// Config holds all salescast configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultMonth int `toml:"default_month"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// envOverrides are applied on top of the file. Unset variables keep the
// file (or default) value.
type envOverrides struct {
	Theme        string `env:"SALESCAST_THEME"`
	DefaultMonth int    `env:"SALESCAST_DEFAULT_MONTH"`
	Addr         string `env:"SALESCAST_ADDR"`
}

// Config keys as they appear in the TOML file.
const (
	KeyDefaultMonth = "general.default_month"
	KeyTheme        = "appearance.theme"
	KeyAddr         = "server.addr"
)

// DefaultAddr is the HTTP listen address when none is configured.
const DefaultAddr = "127.0.0.1:8787"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultMonth: dataset.DefaultMonth,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "salescast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "salescast")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides.
func Load() (Config, error) {
	cfg, err := readFile()
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads only the config file, ignoring environment overrides.
// Callers that Save must start from it so overrides never reach disk.
func LoadFile() (Config, error) {
	cfg, err := readFile()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func readFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// Overrides returns the environment variable overriding each config key,
// keyed by TOML path ("appearance.theme"). Unset variables are omitted.
func Overrides() map[string]string {
	var ov envOverrides
	out := make(map[string]string)
	if err := env.Parse(&ov); err != nil {
		return out
	}
	if ov.Theme != "" {
		out[KeyTheme] = "SALESCAST_THEME"
	}
	if ov.DefaultMonth != 0 {
		out[KeyDefaultMonth] = "SALESCAST_DEFAULT_MONTH"
	}
	if ov.Addr != "" {
		out[KeyAddr] = "SALESCAST_ADDR"
	}
	return out
}

func applyEnv(cfg *Config) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if ov.Theme != "" {
		cfg.Appearance.Theme = ov.Theme
	}
	if ov.DefaultMonth != 0 {
		cfg.General.DefaultMonth = ov.DefaultMonth
	}
	if ov.Addr != "" {
		cfg.Server.Addr = ov.Addr
	}
	return nil
}

// Validate checks values that would otherwise surface as render errors.
func (c Config) Validate() error {
	if err := forecast.ValidatePeriod(c.General.DefaultMonth); err != nil {
		return fmt.Errorf("general.default_month: %w", err)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
