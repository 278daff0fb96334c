package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content. The %s verb is
// replaced with the selected game.
const DefaultConfigYAML = `# assetids configuration

game: %s

# Decoded asset dump (JSON or YAML)
source: assets.yaml

# Extra title overrides (.yaml, .yml, .json or .toml), layered over the built-ins
# overrides: overrides.toml

output:
  dir: generated
  format: python # or go

store:
  path: .assetids/tables.db # or set ASSETIDS_STORE_PATH

logging:
  level: info # or set ASSETIDS_LOG_LEVEL
  format: console # or json

server:
  addr: ":8080"
`

// WriteDefault creates the .assetids directory and writes a default config file.
func WriteDefault(basePath, game string) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if strings.TrimSpace(game) == "" {
		game = Default().Game
	}
	content := fmt.Sprintf(DefaultConfigYAML, game)
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if an assetids config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
