package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the config file used when --config is not given.
// Priority order:
//  1. LSS_CONFIG environment variable (if set)
//  2. <user config dir>/lss/config.yaml
//
// The file does not have to exist.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv("LSS_CONFIG"); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, "lss", "config.yaml"), nil
}
