package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/piwi3910/WallHang/internal/model"
)

// EnvPrefix is the prefix of environment variables that override the
// config file, e.g. WALLHANG_PADDING or WALLHANG_WALL_WIDTH.
const EnvPrefix = "wallhang"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.wallhang/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".wallhang")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentLayouts is never nil
	if config.RecentLayouts == nil {
		config.RecentLayouts = []string{}
	}
	config.Settings = config.Settings.Normalized()
	return config, nil
}

// ApplyEnv overlays WALLHANG_* environment variables onto config. Only
// variables that are set change anything.
func ApplyEnv(config model.AppConfig) (model.AppConfig, error) {
	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return config, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &config.Settings); err != nil {
		return config, fmt.Errorf("failed to read engine settings from environment: %w", err)
	}
	config.Settings = config.Settings.Normalized()
	return config, nil
}

// LoadConfig loads the config file at path and applies environment
// overrides on top of it.
func LoadConfig(path string) (model.AppConfig, error) {
	config, err := LoadAppConfig(path)
	if err != nil {
		return config, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return ApplyEnv(config)
}
