package main

import (
	"errors"
	"os"
	"strings"

	"github.com/danmuck/kawaiictl/internal/config"
)

// loadConfig reads path, or kawaii.toml when present, or falls back to defaults.
func loadConfig(path string) (config.Config, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultPath); errors.Is(err, os.ErrNotExist) {
		return config.DefaultConfig(), nil
	}
	return config.Load(config.DefaultPath)
}
