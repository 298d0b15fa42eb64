package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Template renders DefaultConfig as TOML.
func Template() ([]byte, error) {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("config template encode failed: %w", err)
	}
	return data, nil
}

func WriteTemplate(path string, overwrite bool) error {
	data, err := Template()
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, data, 0o600)
}
