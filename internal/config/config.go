// Package config provides configuration management for efs using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "efs"

// Cache kinds accepted in configuration.
const (
	CacheMap     = "map"
	CacheTinyLFU = "tinylfu"
	CacheOff     = "off"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int          `mapstructure:"version" yaml:"version"`
	Cache   CacheConfig  `mapstructure:"cache" yaml:"cache"`
	Naming  NamingConfig `mapstructure:"naming" yaml:"naming"`
}

// CacheConfig controls the path split cache.
type CacheConfig struct {
	// Kind selects the cache implementation: map, tinylfu or off.
	Kind string `mapstructure:"kind" yaml:"kind"`
	// Size is the entry budget for the tinylfu cache. Ignored otherwise.
	Size int `mapstructure:"size" yaml:"size"`
}

// NamingConfig holds defaults for collision-free name generation.
type NamingConfig struct {
	Separator string `mapstructure:"separator" yaml:"separator"`
	Start     int    `mapstructure:"start" yaml:"start"`
	Step      int    `mapstructure:"step" yaml:"step"`
	Limit     int    `mapstructure:"limit" yaml:"limit"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("EFS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("cache.kind", CacheMap)
	viper.SetDefault("cache.size", 4096)
	viper.SetDefault("naming.separator", "")
	viper.SetDefault("naming.start", 0)
	viper.SetDefault("naming.step", 1)
	viper.SetDefault("naming.limit", 1_000_000)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		Cache:   CacheConfig{Kind: CacheMap, Size: 4096},
		Naming:  NamingConfig{Step: 1, Limit: 1_000_000},
	}
}
