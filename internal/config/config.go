// Package config loads tool settings from an optional config file,
// INVENTORY_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	Database string
	LogLevel string
}

// New returns a viper instance with defaults and sources registered. Flags
// are bound by the CLI layer.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("database", "inventory.db")
	v.SetDefault("log-level", "info")

	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file if one exists and resolves the settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return Config{
		Database: v.GetString("database"),
		LogLevel: v.GetString("log-level"),
	}, nil
}
