package launch

import (
	"path/filepath"
	"strings"

	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/danmuck/kawaiictl/internal/version"
)

// ResolveLibraries maps each library to <libraries>/<artifact path> in manifest
// order. Files are not checked for existence.
func ResolveLibraries(l layout.Layout, desc version.Descriptor) ([]string, error) {
	paths := make([]string, 0, len(desc.Libraries))
	for i, lib := range desc.Libraries {
		rel := strings.TrimSpace(lib.ArtifactPath)
		if rel == "" {
			return nil, &MissingArtifactError{Library: lib.Label(i), Index: i}
		}
		paths = append(paths, filepath.Join(l.Libraries, filepath.FromSlash(rel)))
	}
	return paths, nil
}

// BuildClasspath puts the version jar first, then libraries in the given order.
func BuildClasspath(l layout.Layout, versionID string, libraries []string, p Platform) string {
	entries := make([]string, 0, len(libraries)+1)
	entries = append(entries, l.VersionJar(versionID))
	entries = append(entries, libraries...)
	return strings.Join(entries, p.ListSeparator())
}
