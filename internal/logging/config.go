package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "KAWAII_LOG_LEVEL"
	EnvLogTimestamp = "KAWAII_LOG_TIMESTAMP"
	EnvLogNoColor   = "KAWAII_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup for one process.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// KAWAII_LOG_* variables parse independently; a nil field means unset.
type levelOverride struct {
	Level string `env:"KAWAII_LOG_LEVEL"`
}

type timestampOverride struct {
	Timestamp *bool `env:"KAWAII_LOG_TIMESTAMP"`
}

type noColorOverride struct {
	NoColor *bool `env:"KAWAII_LOG_NOCOLOR"`
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := DefaultConfig(profile)
		ApplyEnvOverrides(&cfg)
		apply(cfg)
	})
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// ApplyEnvOverrides layers KAWAII_LOG_* values onto cfg. An unparseable
// variable is ignored without affecting the rest.
func ApplyEnvOverrides(cfg *Config) {
	if raw, err := env.ParseAs[levelOverride](); err == nil {
		if lvl, ok := ParseLevel(raw.Level); ok {
			cfg.Level = lvl
		}
	}
	if raw, err := env.ParseAs[timestampOverride](); err == nil && raw.Timestamp != nil {
		cfg.Timestamp = *raw.Timestamp
	}
	if raw, err := env.ParseAs[noColorOverride](); err == nil && raw.NoColor != nil {
		cfg.NoColor = *raw.NoColor
	}
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func apply(cfg Config) {
	zerolog.SetGlobalLevel(cfg.Level)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(output).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	log.Logger = ctx.Logger()
}
