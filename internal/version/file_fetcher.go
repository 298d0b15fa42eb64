package version

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/rs/zerolog/log"
)

var (
	ErrVersionNotInstalled = errors.New("version: not installed")
	ErrVersionMismatch     = errors.New("version: manifest id mismatch")
)

// FileFetcher serves descriptors already materialized under a layout's
// versions directory as <id>/<id>.json next to <id>/<id>.jar.
type FileFetcher struct {
	Layout layout.Layout
}

func NewFileFetcher(l layout.Layout) FileFetcher {
	return FileFetcher{Layout: l}
}

func (f FileFetcher) Fetch(ctx context.Context, versionID string) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}
	versionID = strings.TrimSpace(versionID)
	if versionID == "" {
		return Descriptor{}, fmt.Errorf("%w: empty version id", ErrVersionNotInstalled)
	}

	path := f.Layout.VersionManifest(versionID)
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Descriptor{}, fmt.Errorf("%w: %s (missing %s)", ErrVersionNotInstalled, versionID, path)
	}
	if err != nil {
		return Descriptor{}, err
	}
	defer file.Close()

	desc, err := Decode(file)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	if desc.ID != versionID {
		return Descriptor{}, fmt.Errorf("%w: requested=%q manifest=%q", ErrVersionMismatch, versionID, desc.ID)
	}
	if err := desc.Validate(); err != nil {
		return Descriptor{}, err
	}

	jar := f.Layout.VersionJar(versionID)
	if _, err := os.Stat(jar); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %s (client jar: %v)", ErrVersionNotInstalled, versionID, err)
	}

	log.Debug().
		Str("version", desc.ID).
		Str("manifest", path).
		Int("libraries", len(desc.Libraries)).
		Msg("version.fetch local")
	return desc, nil
}
