// File: config_test.go
// Title: Configuration Management Tests
// Description: Tests for loading, parsing, and accessing configuration
//              data including environment overrides and discovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-11
// Modified: 2026-08-23
//
// Change History:
// - 2026-08-11 v0.1.0: Initial tests

package config

import (
	"os"
	"path/filepath"
	"testing"

	toycerror "github.com/msto63/toyc/foundation/core/error"
)

func TestLoadFromStringTOML(t *testing.T) {
	content := `
name = "toyc"

[output]
color = true
ast = false

[compile]
jobs = 4
`
	cfg, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("name"); got != "toyc" {
		t.Errorf("GetString(name) = %q, want %q", got, "toyc")
	}
	if got := cfg.GetBool("output.color"); !got {
		t.Errorf("GetBool(output.color) = false, want true")
	}
	if got := cfg.GetInt("compile.jobs"); got != 4 {
		t.Errorf("GetInt(compile.jobs) = %d, want 4", got)
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	content := `
name: toyc
output:
  color: true
compile:
  jobs: 8
  extensions:
    - .tc
    - .toy
`
	cfg, err := LoadFromString(content, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("name"); got != "toyc" {
		t.Errorf("GetString(name) = %q, want %q", got, "toyc")
	}
	if got := cfg.GetInt("compile.jobs"); got != 8 {
		t.Errorf("GetInt(compile.jobs) = %d, want 8", got)
	}
	exts := cfg.GetStringSlice("compile.extensions")
	if len(exts) != 2 || exts[0] != ".tc" || exts[1] != ".toy" {
		t.Errorf("GetStringSlice(compile.extensions) = %v, want [.tc .toy]", exts)
	}
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("not [ valid = toml {", FormatTOML)
	if err == nil {
		t.Fatal("LoadFromString() expected error for invalid TOML")
	}
	if !toycerror.HasCode(err, toycerror.CodeConfigInvalid) {
		t.Errorf("error code = %v, want %v", toycerror.GetCode(err), toycerror.CodeConfigInvalid)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		want     Format
	}{
		{"toml extension", "config.toml", FormatTOML},
		{"yaml extension", "config.yaml", FormatYAML},
		{"yml extension", "config.yml", FormatYAML},
		{"uppercase yaml", "config.YAML", FormatYAML},
		{"no extension", "config", FormatTOML},
		{"unknown extension", "config.json", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.filePath); got != tt.want {
				t.Errorf("detectFormat(%q) = %v, want %v", tt.filePath, got, tt.want)
			}
		})
	}
}

func TestGetStringDefaults(t *testing.T) {
	cfg := New()
	cfg.Set("present", "value")

	tests := []struct {
		name         string
		key          string
		defaultValue []string
		want         string
	}{
		{"existing key", "present", nil, "value"},
		{"missing key no default", "absent", nil, ""},
		{"missing key with default", "absent", []string{"fallback"}, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.GetString(tt.key, tt.defaultValue...); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetIntConversions(t *testing.T) {
	content := `
direct = 42
fromstring = "17"
fromfloat = 3.0
`
	cfg, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"int value", "direct", 42},
		{"string value", "fromstring", 17},
		{"float value", "fromfloat", 3},
		{"missing with default", "nothere", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.GetInt(tt.key, 9); got != tt.want {
				t.Errorf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetBoolConversions(t *testing.T) {
	content := `
yes = true
no = false
asString = "true"
`
	cfg, err := LoadFromString(content, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"true value", "yes", true},
		{"false value", "no", false},
		{"string true", "asString", true},
		{"missing defaults false", "nothere", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.GetBool(tt.key); got != tt.want {
				t.Errorf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(`[output]
color = false`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg.envPrefix = "TOYC"

	t.Setenv("TOYC_OUTPUT_COLOR", "true")

	if got := cfg.GetBool("output.color"); !got {
		t.Error("GetBool(output.color) = false, want true from environment")
	}
}

func TestFormatEnvKey(t *testing.T) {
	cfg := New()
	cfg.envPrefix = "TOYC"

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"simple key", "color", "TOYC_COLOR"},
		{"nested key", "output.color", "TOYC_OUTPUT_COLOR"},
		{"dashed key", "max-errors", "TOYC_MAX_ERRORS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.formatEnvKey(tt.key); got != tt.want {
				t.Errorf("formatEnvKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSetAndHas(t *testing.T) {
	cfg := New()

	if cfg.Has("compile.jobs") {
		t.Error("Has() = true before Set")
	}

	cfg.Set("compile.jobs", 2)

	if !cfg.Has("compile.jobs") {
		t.Error("Has() = false after Set")
	}
	if got := cfg.GetInt("compile.jobs"); got != 2 {
		t.Errorf("GetInt(compile.jobs) = %d, want 2", got)
	}
}

func TestMergeDefaults(t *testing.T) {
	cfg, err := LoadFromString(`set = "file"`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg.data = mergeDefaults(cfg.data, map[string]interface{}{
		"set":   "default",
		"unset": "default",
	})

	if got := cfg.GetString("set"); got != "file" {
		t.Errorf("GetString(set) = %q, want file value to win over default", got)
	}
	if got := cfg.GetString("unset"); got != "default" {
		t.Errorf("GetString(unset) = %q, want %q", got, "default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !toycerror.HasCode(err, toycerror.CodeConfigMissing) {
		t.Errorf("error code = %v, want %v", toycerror.GetCode(err), toycerror.CodeConfigMissing)
	}
}

func TestDiscoverFindsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toyc.toml")
	if err := os.WriteFile(path, []byte(`name = "discovered"`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Discover(DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"toyc"},
		Extensions: []string{".toml"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if got := cfg.GetString("name"); got != "discovered" {
		t.Errorf("GetString(name) = %q, want %q", got, "discovered")
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestDiscoverNotRequired(t *testing.T) {
	cfg, err := Discover(DiscoveryOptions{
		Paths:      []string{t.TempDir()},
		Filenames:  []string{"toyc"},
		Extensions: []string{".toml"},
		Defaults:   map[string]interface{}{"jobs": 4},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if got := cfg.GetInt("jobs"); got != 4 {
		t.Errorf("GetInt(jobs) = %d, want default 4", got)
	}
}

func TestDiscoverRequired(t *testing.T) {
	_, err := Discover(DiscoveryOptions{
		Paths:      []string{t.TempDir()},
		Filenames:  []string{"toyc"},
		Extensions: []string{".toml"},
		Required:   true,
	})
	if err == nil {
		t.Fatal("Discover() expected error when required and no file found")
	}
	if !toycerror.HasCode(err, toycerror.CodeConfigMissing) {
		t.Errorf("error code = %v, want %v", toycerror.GetCode(err), toycerror.CodeConfigMissing)
	}
}
