package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the display package.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents lss configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format selects the report format (text, json, yaml)
	Format string `yaml:"format"`

	// Color controls colored text output (auto, always, never)
	Color string `yaml:"color"`

	// IncludeHidden lists entries whose names start with "."
	IncludeHidden bool `yaml:"include_hidden"`

	// FilesOnly skips subdirectories
	FilesOnly bool `yaml:"files_only"`

	// Extensions restricts the listing to these extensions (empty = all)
	Extensions []string `yaml:"extensions"`

	// Workers is the number of goroutines used to group names (0 = sequential)
	Workers int `yaml:"workers"`

	// WatchDebounce is how long watch mode waits for changes to settle
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "warn",
		Format:        FormatText,
		Color:         ColorAuto,
		IncludeHidden: true,
		FilesOnly:     false,
		Extensions:    nil,
		Workers:       0,
		WatchDebounce: 250 * time.Millisecond,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are read as strings so "500ms" style values work
	type yamlConfig struct {
		LogLevel      string   `yaml:"log_level"`
		Format        string   `yaml:"format"`
		Color         string   `yaml:"color"`
		IncludeHidden bool     `yaml:"include_hidden"`
		FilesOnly     bool     `yaml:"files_only"`
		Extensions    []string `yaml:"extensions"`
		Workers       int      `yaml:"workers"`
		WatchDebounce string   `yaml:"watch_debounce"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
	if yamlCfg.FilesOnly {
		cfg.FilesOnly = true
	}
	if len(yamlCfg.Extensions) > 0 {
		cfg.Extensions = yamlCfg.Extensions
	}
	if yamlCfg.Workers != 0 {
		cfg.Workers = yamlCfg.Workers
	}
	if yamlCfg.WatchDebounce != "" {
		debounce, err := time.ParseDuration(yamlCfg.WatchDebounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch_debounce format %q: %w", yamlCfg.WatchDebounce, err)
		}
		cfg.WatchDebounce = debounce
	}

	// include_hidden defaults to true, so an explicit false has to be detected
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["include_hidden"]; exists {
			cfg.IncludeHidden = yamlCfg.IncludeHidden
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, format, colorMode *string, includeHidden, filesOnly *bool, extensions *[]string, workers *int, debounce *time.Duration) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if format != nil {
		c.Format = *format
	}
	if colorMode != nil {
		c.Color = *colorMode
	}
	if includeHidden != nil {
		c.IncludeHidden = *includeHidden
	}
	if filesOnly != nil {
		c.FilesOnly = *filesOnly
	}
	if extensions != nil {
		c.Extensions = *extensions
	}
	if workers != nil {
		c.Workers = *workers
	}
	if debounce != nil {
		c.WatchDebounce = *debounce
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q, must be one of: text, json, yaml", c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must be >= 0, got %v", c.WatchDebounce)
	}

	return nil
}
