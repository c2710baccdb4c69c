package config

import (
	"os"
	"path/filepath"
)

// StridePath returns the root directory for Stride data.
// It uses $STRIDE_PATH if set, otherwise defaults to ~/.stride.
func StridePath() string {
	if v := os.Getenv("STRIDE_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".stride")
	}
	return filepath.Join(home, ".stride")
}

// ConfigPath returns the path to the Stride config file.
func ConfigPath() string {
	return filepath.Join(StridePath(), "config.jsonc")
}

// DotenvPath returns the path to the Stride .env file.
func DotenvPath() string {
	return filepath.Join(StridePath(), ".env")
}
