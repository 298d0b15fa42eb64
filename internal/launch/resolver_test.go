package launch

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/danmuck/kawaiictl/internal/version"
)

func TestResolveLibrariesPreservesManifestOrder(t *testing.T) {
	l := layout.New("minecraft")
	desc := version.Descriptor{
		ID: "1.20",
		Libraries: []version.LibraryRef{
			{Name: "b", ArtifactPath: "b/b.jar"},
			{Name: "a", ArtifactPath: "a/a.jar"},
		},
	}
	got, err := ResolveLibraries(l, desc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{
		filepath.Join("minecraft", "libraries", "b", "b.jar"),
		filepath.Join("minecraft", "libraries", "a", "a.jar"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("resolved=%q want %q", got, want)
	}
}

func TestResolveLibrariesMissingArtifact(t *testing.T) {
	desc := version.Descriptor{
		ID: "1.20",
		Libraries: []version.LibraryRef{
			{Name: "com.foo:foo:1.0", ArtifactPath: "com/foo/foo-1.0.jar"},
			{Name: "org.lwjgl:lwjgl:3.3.1:natives-linux"},
		},
	}
	_, err := ResolveLibraries(layout.New("minecraft"), desc)
	if !errors.Is(err, ErrMissingArtifact) {
		t.Fatalf("expected ErrMissingArtifact, got %v", err)
	}
	var missing *MissingArtifactError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingArtifactError, got %T", err)
	}
	if missing.Library != "org.lwjgl:lwjgl:3.3.1:natives-linux" || missing.Index != 1 {
		t.Fatalf("unexpected missing artifact: %+v", missing)
	}
	if !strings.Contains(err.Error(), "org.lwjgl:lwjgl:3.3.1:natives-linux") {
		t.Fatalf("error should name the library: %v", err)
	}
}

func TestBuildClasspathPosixOrdering(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("posix path layout")
	}
	l := layout.New("minecraft")
	libs, err := ResolveLibraries(l, version.Descriptor{
		ID: "1.20",
		Libraries: []version.LibraryRef{
			{Name: "a", ArtifactPath: "a/a.jar"},
			{Name: "b", ArtifactPath: "b/b.jar"},
		},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := BuildClasspath(l, "1.20", libs, Platform{OS: "linux", Arch: "amd64"})
	want := "minecraft/versions/1.20/1.20.jar:minecraft/libraries/a/a.jar:minecraft/libraries/b/b.jar"
	if got != want {
		t.Fatalf("classpath=%q want %q", got, want)
	}
}

func TestBuildClasspathWindowsSeparator(t *testing.T) {
	l := layout.New("minecraft")
	libs := []string{
		filepath.Join("minecraft", "libraries", "a", "a.jar"),
		filepath.Join("minecraft", "libraries", "b", "b.jar"),
	}
	got := BuildClasspath(l, "1.20", libs, Platform{OS: "windows", Arch: "amd64"})
	want := strings.Join([]string{
		filepath.Join("minecraft", "versions", "1.20", "1.20.jar"),
		libs[0],
		libs[1],
	}, ";")
	if got != want {
		t.Fatalf("classpath=%q want %q", got, want)
	}
}

func TestBuildClasspathWithoutLibraries(t *testing.T) {
	l := layout.New("minecraft")
	got := BuildClasspath(l, "1.20", nil, Platform{OS: "linux"})
	if got != l.VersionJar("1.20") {
		t.Fatalf("unexpected classpath: %q", got)
	}
}
