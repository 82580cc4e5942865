/*
Package config manages the TOML config for the uzi engine shell.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Shell  ShellConfig  `toml:"shell"`
}

// EngineConfig is the identity and option state advertised over the
// protocol.
type EngineConfig struct {
	Name         string `toml:"name"`
	Author       string `toml:"author"`
	MultiPv      int    `toml:"multipv"`
	ShowCurrLine bool   `toml:"show_currline"`
}

// ShellConfig has shell related options.
type ShellConfig struct {
	UseBook   bool   `toml:"use_book"`
	TracePath string `toml:"trace_path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Name:    "uzi 0.3.0",
			Author:  "The Uzi Authors",
			MultiPv: 1,
		},
		Shell: ShellConfig{
			UseBook: true,
		},
	}
}

// DefaultPath returns the default location of config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "uzi", "config.toml"), nil
}

// InitConfig loads config from file or creates it with defaults if missing.
func InitConfig(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file on top of the defaults, so missing keys
// keep their built-in values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
