// Package conf loads and validates the service configuration from
// config.yaml, environment variables and command line flags via viper.
package conf

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/mcpdict/mcpdict-go/internal/errors"
)

// WebServerSettings holds the HTTP listener configuration.
type WebServerSettings struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// DatabaseSettings holds the dictionary store configuration. The store is
// a prebuilt SQLite file, always opened read-only.
type DatabaseSettings struct {
	Path        string `yaml:"path"`
	BusyTimeout int    `yaml:"busytimeout"` // milliseconds to wait on a locked store
}

// LookupSettings bounds the character lookup operation.
type LookupSettings struct {
	MaxChars int `yaml:"maxchars"` // maximum distinct characters per request
}

// LogSettings holds optional log file output configuration.
type LogSettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Settings is the root configuration structure.
type Settings struct {
	Debug     bool              `yaml:"debug"`
	Log       LogSettings       `yaml:"log"`
	WebServer WebServerSettings `yaml:"webserver"`
	Database  DatabaseSettings  `yaml:"database"`
	Lookup    LookupSettings    `yaml:"lookup"`
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a
// Settings instance.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper sets defaults and reads config.yaml when present. A missing
// config file is not an error; defaults plus flags/env are sufficient.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/mcpdict")
	viper.AddConfigPath("/etc/mcpdict")

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}
	return nil
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
