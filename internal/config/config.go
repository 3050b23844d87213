// Package config reads and writes tracker.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the tracker home directory.
const FileName = "tracker.yaml"

// EnvHome overrides the tracker home directory.
const EnvHome = "TRACKER_HOME"

// Config represents the top-level tracker.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
}

// DataConfig locates the on-disk state.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Database string `yaml:"database"`
}

// DisplayConfig controls presentation.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Default returns a Config rooted at the given home directory.
func Default(home string) *Config {
	return &Config{
		Data: DataConfig{
			Dir:      filepath.Join(home, "data"),
			Database: "tracker.db",
		},
		Display: DisplayConfig{
			Currency: "$",
		},
	}
}

// DatabasePath returns the full path of the sqlite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Data.Dir, c.Data.Database)
}

// Load reads a tracker.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Data.Dir == "" || cfg.Data.Database == "" {
		return nil, fmt.Errorf("config %s: data.dir and data.database are required", path)
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = "$"
	}
	return &cfg, nil
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

// Home resolves the tracker home directory: the TRACKER_HOME environment
// variable if set, otherwise the current directory.
func Home() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return "."
}
