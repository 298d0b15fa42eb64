package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/danmuck/kawaiictl/internal/tools"
)

var (
	ErrFilesystem        = layout.ErrFilesystem
	ErrMissingArtifact   = errors.New("launch: missing library artifact")
	ErrDownload          = errors.New("launch: download failed")
	ErrSpawn             = errors.New("launch: spawn failed")
	ErrInvalidRequest    = errors.New("launch: invalid request")
	ErrInvalidDescriptor = errors.New("launch: invalid version descriptor")
)

// FilesystemError reports a layout directory that could not be created.
type FilesystemError = layout.FilesystemError

// MissingArtifactError names a library entry without an artifact path.
type MissingArtifactError struct {
	Library string
	Index   int
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("launch: library %q (index %d) has no artifact path", e.Library, e.Index)
}

func (e *MissingArtifactError) Is(target error) bool { return target == ErrMissingArtifact }

// DownloadError wraps the fetch collaborator's failure unchanged.
type DownloadError struct {
	Version string
	Err     error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("launch: fetch version %q: %v", e.Version, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

func (e *DownloadError) Is(target error) bool { return target == ErrDownload }

// SpawnError carries the OS-level reason the runtime could not start.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("launch: start %q: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func (e *SpawnError) Is(target error) bool { return target == ErrSpawn }

// NotFound reports whether the executable is missing from the host.
func (e *SpawnError) NotFound() bool { return tools.IsNotFound(e.Err) }

// Outcome classifies a launch result for metrics and status mapping.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "started"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrFilesystem):
		return "filesystem"
	case errors.Is(err, ErrDownload):
		return "download"
	case errors.Is(err, ErrInvalidDescriptor):
		return "invalid_descriptor"
	case errors.Is(err, ErrMissingArtifact):
		return "missing_artifact"
	case errors.Is(err, ErrSpawn):
		return "spawn"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
