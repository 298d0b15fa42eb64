package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/kawaiictl/internal/layout"
)

// DefaultPath is where kawaiictl looks for its config when none is given.
const DefaultPath = "kawaii.toml"

// Config is the launcher runtime configuration.
type Config struct {
	Root           string   `toml:"root"`
	JavaExecutable string   `toml:"java_executable"`
	ListenAddr     string   `toml:"listen_addr"`
	CorsOrigins    []string `toml:"cors_origins"`
}

func DefaultConfig() Config {
	return Config{
		Root:           layout.DefaultRoot,
		JavaExecutable: "",
		ListenAddr:     "127.0.0.1:9320",
		CorsOrigins:    []string{"http://localhost:1420"},
	}
}

// Layout is the installation layout named by the config root.
func (c Config) Layout() layout.Layout {
	return layout.New(c.Root)
}

// Load decodes path and overlays only the keys it defines onto DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("root") {
		cfg.Root = strings.TrimSpace(raw.Root)
	}
	if meta.IsDefined("java_executable") {
		cfg.JavaExecutable = strings.TrimSpace(raw.JavaExecutable)
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Root) == "" {
		return fmt.Errorf("root is required")
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("listen_addr is required")
	}
	for i, origin := range cfg.CorsOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors_origins[%d]=%q must be an http(s) origin", i, origin)
		}
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimRight(strings.TrimSpace(origin), "/")
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
