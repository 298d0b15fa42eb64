package tools

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
)

func TestExecStarterMissingExecutable(t *testing.T) {
	_, err := ExecStarter{}.Start("kawaiictl-definitely-not-installed", nil)
	if err == nil {
		t.Fatalf("expected start error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
	if ExitCode(err) != 127 {
		t.Fatalf("unexpected exit code: %d", ExitCode(err))
	}
}

func TestExitCodeClassification(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("nil error should map to 0")
	}
	if ExitCode(errors.New("boom")) != 1 {
		t.Fatalf("generic error should map to 1")
	}
	wrapped := fmt.Errorf("start: %w", &exec.Error{Name: "java", Err: exec.ErrNotFound})
	if !IsNotFound(wrapped) {
		t.Fatalf("expected wrapped exec.Error to be not found")
	}
}
