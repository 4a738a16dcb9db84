// Package config loads application configuration from a YAML file and
// environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Archive  ArchiveConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int
}

// ArchiveConfig holds the bill file archive configuration.
type ArchiveConfig struct {
	Dir string
}

// DatabaseConfig holds the receipt database configuration.
type DatabaseConfig struct {
	Path string
}

// Load reads configuration from the given file (default "config.yaml"),
// falling back to defaults for anything missing. A missing config file is
// not an error; the defaults describe a working local setup.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SPLITBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("Server.Port", 8080)
	v.SetDefault("Archive.Dir", "bills_archive")
	v.SetDefault("Database.Path", "./data/receipts.db")

	if err := v.ReadInConfig(); err != nil {
		// Only a parse failure is fatal; running without a file is fine.
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	return &cfg, nil
}
