package layout

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danmuck/kawaiictl/internal/testutil/testlog"
)

func TestNewDefaultsRoot(t *testing.T) {
	l := New("  ")
	want := Layout{
		Root:      "minecraft",
		Libraries: filepath.Join("minecraft", "libraries"),
		Assets:    filepath.Join("minecraft", "assets"),
		Versions:  filepath.Join("minecraft", "versions"),
		Natives:   filepath.Join("minecraft", "bin"),
	}
	if l != want {
		t.Fatalf("unexpected layout: %+v", l)
	}
	if got := l.VersionJar("1.20"); got != filepath.Join("minecraft", "versions", "1.20", "1.20.jar") {
		t.Fatalf("unexpected version jar: %q", got)
	}
}

func TestPrepareCreatesAllDirectories(t *testing.T) {
	testlog.Start(t)
	l := New(filepath.Join(t.TempDir(), "minecraft"))
	if err := l.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestPrepareCreatesMissingParents(t *testing.T) {
	testlog.Start(t)
	l := New(filepath.Join(t.TempDir(), "share", "kawaii", "minecraft"))
	if err := l.Prepare(); err != nil {
		t.Fatalf("prepare nested root: %v", err)
	}
	for _, dir := range l.Dirs() {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestPrepareIsIdempotent(t *testing.T) {
	testlog.Start(t)
	base := t.TempDir()
	l := New(filepath.Join(base, "minecraft"))
	if err := l.Prepare(); err != nil {
		t.Fatalf("first prepare: %v", err)
	}
	marker := filepath.Join(l.Libraries, "keep.jar")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	first := listTree(t, base)

	if err := l.Prepare(); err != nil {
		t.Fatalf("second prepare: %v", err)
	}
	second := listTree(t, base)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("tree changed:\nfirst=%v\nsecond=%v", first, second)
	}
}

func TestPrepareRejectsFileCollision(t *testing.T) {
	testlog.Start(t)
	l := New(filepath.Join(t.TempDir(), "minecraft"))
	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	if err := os.WriteFile(l.Assets, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write collision: %v", err)
	}

	err := l.Prepare()
	if !errors.Is(err, ErrFilesystem) {
		t.Fatalf("expected ErrFilesystem, got %v", err)
	}
	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) || fsErr.Path != l.Assets {
		t.Fatalf("expected FilesystemError for %s, got %v", l.Assets, err)
	}
}

func listTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return out
}
