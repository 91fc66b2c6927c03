package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if !cfg.IncludeHidden {
		t.Errorf("IncludeHidden = false, want true")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.WatchDebounce != 250*time.Millisecond {
		t.Errorf("WatchDebounce = %v, want 250ms", cfg.WatchDebounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `log_level: debug
format: json
color: never
include_hidden: false
files_only: true
extensions: [".exr", ".dpx"]
workers: 4
watch_debounce: 1s
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := &Config{
		LogLevel:      "debug",
		Format:        FormatJSON,
		Color:         ColorNever,
		IncludeHidden: false,
		FilesOnly:     true,
		Extensions:    []string{".exr", ".dpx"},
		Workers:       4,
		WatchDebounce: time.Second,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

// TestLoadConfigPartialFile verifies unset keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("format: yaml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want yaml", cfg.Format)
	}
	if !cfg.IncludeHidden {
		t.Errorf("IncludeHidden should keep its default of true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default warn", cfg.LogLevel)
	}
}

// TestLoadConfigMissingFile tests that a missing file returns defaults
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigErrors tests malformed files
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid yaml", "format: [unclosed\n", "failed to parse config file"},
		{"bad duration", "watch_debounce: soon\n", "invalid watch_debounce format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			_, err := LoadConfig(configPath)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestMergeWithFlags verifies that only non-nil flags override
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	format := FormatJSON
	hidden := false
	workers := 8
	exts := []string{".png"}

	cfg.MergeWithFlags(nil, &format, nil, &hidden, nil, &exts, &workers, nil)

	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.IncludeHidden {
		t.Errorf("IncludeHidden = true, want false")
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if !reflect.DeepEqual(cfg.Extensions, exts) {
		t.Errorf("Extensions = %v, want %v", cfg.Extensions, exts)
	}
	if cfg.LogLevel != "warn" || cfg.Color != ColorAuto || cfg.FilesOnly {
		t.Errorf("untouched fields changed: %+v", cfg)
	}
}

// TestValidate checks every invalid field
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"upper case level", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "invalid format"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "invalid color"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers must be >= 0"},
		{"negative debounce", func(c *Config) { c.WatchDebounce = -time.Second }, "watch_debounce must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultConfigPath tests env override and fallback
func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("LSS_CONFIG", "/tmp/custom.yaml")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if path != "/tmp/custom.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want /tmp/custom.yaml", path)
	}

	t.Setenv("LSS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err = DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("lss", "config.yaml")) {
		t.Errorf("DefaultConfigPath() = %q, want suffix lss/config.yaml", path)
	}
}
