// File: discovery.go
// Title: Configuration File Discovery
// Description: Implements automatic configuration file discovery across
//              well-known paths, trying multiple filenames and extensions
//              until a loadable file is found.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-11 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"

	toycerror "github.com/msto63/toyc/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Search paths in order of preference
	Filenames  []string               // Base filenames to try
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment prefix for loaded config
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether a config file must exist
}

// DefaultDiscoveryOptions returns the standard discovery options
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "toyc"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"toyc"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "TOYC",
		Required:   false,
	}
}

// Discover searches for a configuration file and loads the first one found.
// When no file exists and Required is false, an empty configuration with
// the defaults applied is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(path, filename+ext)
				if _, err := os.Stat(candidate); err != nil {
					continue
				}

				cfg, err := LoadWithOptions(candidate, LoadOptions{
					Format:    FormatAuto,
					EnvPrefix: options.EnvPrefix,
					Defaults:  options.Defaults,
				})
				if err != nil {
					// A file that exists but cannot be loaded is an error,
					// not a reason to silently keep searching.
					return nil, toycerror.Wrap(err, fmt.Sprintf("found config file but failed to load: %s", candidate)).
						WithCode(toycerror.CodeConfigInvalid).
						WithOperation("config.Discover").
						WithDetail("filePath", candidate)
				}
				return cfg, nil
			}
		}
	}

	if options.Required {
		return nil, toycerror.New("no configuration file found in search paths").
			WithCode(toycerror.CodeConfigMissing).
			WithOperation("config.Discover").
			WithDetail("paths", fmt.Sprintf("%v", options.Paths))
	}

	cfg := New()
	cfg.envPrefix = options.EnvPrefix
	if options.Defaults != nil {
		cfg.data = mergeDefaults(cfg.data, options.Defaults)
	}
	return cfg, nil
}
