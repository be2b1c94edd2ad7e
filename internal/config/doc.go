// Package config provides configuration management for the efs CLI.
//
// This package handles loading and validating the efs tool's own
// configuration file, which tunes the path split cache and the defaults
// for collision-free name generation.
//
// # Configuration File
//
// The default configuration file location is ~/.config/efs/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	cache:
//	  kind: tinylfu   # map, tinylfu or off
//	  size: 4096
//	naming:
//	  separator: "-"
//	  start: 0
//	  step: 1
//	  limit: 1000000
//
// # Loading Configuration
//
// Use [Load] with an empty path to search the default locations with
// graceful fallback to default values:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Settings can also be supplied through EFS_-prefixed environment
// variables.
//
// # Validation
//
// Validate a configuration with [Validate]:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
