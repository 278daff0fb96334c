// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for assetids configuration.
	DefaultConfigDir = ".assetids"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultStoreFile is the default table store file name.
	DefaultStoreFile = "tables.db"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel  = "ASSETIDS_LOG_LEVEL"
	EnvStorePath = "ASSETIDS_STORE_PATH"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Game      string        `yaml:"game,omitempty"`
	Source    string        `yaml:"source,omitempty"`
	Overrides string        `yaml:"overrides,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Store     StoreConfig   `yaml:"store,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Server    ServerConfig  `yaml:"server,omitempty"`
}

// OutputConfig controls where and how generated tables are written.
type OutputConfig struct {
	Dir    string `yaml:"dir,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// StoreConfig holds configuration for the SQLite table store.
type StoreConfig struct {
	// Path is the file path to the SQLite database. Relative paths are
	// resolved against the base path.
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ServerConfig holds settings for the HTTP lookup server.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Game:   "echoes",
		Source: "assets.yaml",
		Output: OutputConfig{
			Dir:    "generated",
			Format: "python",
		},
		Store: StoreConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultStoreFile),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load loads configuration from the .assetids directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'assetids init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadOrDefault loads the config when one exists and falls back to defaults
// with environment overrides applied otherwise.
func LoadOrDefault(basePath string) (*Config, error) {
	if !Exists(basePath) {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	return Load(basePath)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv(EnvStorePath); path != "" {
		c.Store.Path = path
	}
}

// Resolve returns p unchanged when absolute, or joined to basePath otherwise.
func Resolve(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) || p == ":memory:" {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .assetids config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
