// Package layout owns the on-disk installation directories used by a launch.
//
// Ownership boundary:
// - directory naming under one installation root
// - idempotent directory creation
//
// The layout is never deleted or pruned here.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultRoot is the installation root used when none is configured.
const DefaultRoot = "minecraft"

var ErrFilesystem = errors.New("layout: filesystem error")

// FilesystemError reports a directory that could not be created.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("layout: create directory %q: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }

// Layout names the five directories of one installation root.
type Layout struct {
	Root      string
	Libraries string
	Assets    string
	Versions  string
	Natives   string
}

// New builds the standard layout under root.
func New(root string) Layout {
	root = strings.TrimSpace(root)
	if root == "" {
		root = DefaultRoot
	}
	root = filepath.Clean(root)
	return Layout{
		Root:      root,
		Libraries: filepath.Join(root, "libraries"),
		Assets:    filepath.Join(root, "assets"),
		Versions:  filepath.Join(root, "versions"),
		Natives:   filepath.Join(root, "bin"),
	}
}

// Dirs returns the layout directories, root first.
func (l Layout) Dirs() []string {
	return []string{l.Root, l.Assets, l.Libraries, l.Versions, l.Natives}
}

// VersionDir is the per-version directory holding the client jar and descriptor.
func (l Layout) VersionDir(versionID string) string {
	return filepath.Join(l.Versions, versionID)
}

// VersionJar is <versions>/<id>/<id>.jar.
func (l Layout) VersionJar(versionID string) string {
	return filepath.Join(l.VersionDir(versionID), versionID+".jar")
}

// VersionManifest is <versions>/<id>/<id>.json.
func (l Layout) VersionManifest(versionID string) string {
	return filepath.Join(l.VersionDir(versionID), versionID+".json")
}

// Prepare creates every missing layout directory. Existing directories are left alone.
func (l Layout) Prepare() error {
	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return &FilesystemError{Path: dir, Err: errors.New("exists and is not a directory")}
		case !errors.Is(err, os.ErrNotExist):
			return &FilesystemError{Path: dir, Err: err}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FilesystemError{Path: dir, Err: err}
		}
		log.Debug().Str("dir", dir).Msg("layout.prepare created")
	}
	return nil
}
