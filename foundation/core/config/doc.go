// File: doc.go
// Title: Package Documentation for Configuration Management
// Description: Provides package-level documentation for the config package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-11 v0.1.0: Initial documentation

// Package config provides configuration management for toyc tools.
//
// Configuration files may be TOML (default) or YAML; the format is
// auto-detected from the file extension. Values are addressed with
// dot notation (for example "output.color") and can be overridden by
// environment variables: the key is upper-cased, dots become
// underscores, and the configured prefix is prepended, so
// "output.color" becomes TOYC_OUTPUT_COLOR.
//
// Basic usage:
//
//	cfg, err := config.Load("toyc.toml")
//	if err != nil {
//	    return err
//	}
//	jobs := cfg.GetInt("compile.jobs", 4)
//
// Discovery searches well-known locations (the working directory and
// $HOME/.config/toyc) for a toyc.{toml,yaml,yml} file:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
package config
