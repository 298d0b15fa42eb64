// Package version owns the version descriptor shape and the fetch contract
// used to make a version's files present locally.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Descriptor is the launch-relevant subset of one version manifest.
type Descriptor struct {
	ID         string
	MainClass  string
	Type       string
	AssetIndex AssetIndex
	Libraries  []LibraryRef
}

type AssetIndex struct {
	ID string
}

// LibraryRef locates one library jar under the libraries root.
// ArtifactPath is empty when the manifest entry carries no artifact download.
type LibraryRef struct {
	Name         string
	ArtifactPath string
}

// Label names the library for diagnostics, falling back to its position.
func (r LibraryRef) Label(index int) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return fmt.Sprintf("libraries[%d]", index)
}

// Fetcher ensures a version's descriptor, libraries and assets are present
// on disk and returns the descriptor. Implementations honor ctx.
type Fetcher interface {
	Fetch(ctx context.Context, versionID string) (Descriptor, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, versionID string) (Descriptor, error)

func (f FetcherFunc) Fetch(ctx context.Context, versionID string) (Descriptor, error) {
	return f(ctx, versionID)
}

// manifest mirrors the JSON keys read from a version manifest.
type manifest struct {
	ID         string `json:"id"`
	MainClass  string `json:"mainClass"`
	Type       string `json:"type"`
	AssetIndex struct {
		ID string `json:"id"`
	} `json:"assetIndex"`
	Libraries []struct {
		Name      string `json:"name"`
		Downloads struct {
			Artifact *struct {
				Path string `json:"path"`
			} `json:"artifact"`
		} `json:"downloads"`
	} `json:"libraries"`
}

// Decode parses a version manifest. Library applicability rules are not evaluated.
func Decode(r io.Reader) (Descriptor, error) {
	var raw manifest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Descriptor{}, fmt.Errorf("version: decode manifest: %w", err)
	}
	desc := Descriptor{
		ID:         raw.ID,
		MainClass:  raw.MainClass,
		Type:       raw.Type,
		AssetIndex: AssetIndex{ID: raw.AssetIndex.ID},
		Libraries:  make([]LibraryRef, 0, len(raw.Libraries)),
	}
	for _, lib := range raw.Libraries {
		ref := LibraryRef{Name: lib.Name}
		if lib.Downloads.Artifact != nil {
			ref.ArtifactPath = lib.Downloads.Artifact.Path
		}
		desc.Libraries = append(desc.Libraries, ref)
	}
	return desc, nil
}

// Validate checks the fields the launch invocation cannot do without.
func (d Descriptor) Validate() error {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return fmt.Errorf("version: descriptor missing id")
	case strings.TrimSpace(d.MainClass) == "":
		return fmt.Errorf("version %s: descriptor missing mainClass", d.ID)
	case strings.TrimSpace(d.AssetIndex.ID) == "":
		return fmt.Errorf("version %s: descriptor missing assetIndex.id", d.ID)
	}
	return nil
}
