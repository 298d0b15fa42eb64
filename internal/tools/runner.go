package tools

import (
	"errors"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Process identifies a started child. The starter keeps no other handle.
type Process struct {
	PID        int
	Executable string
}

// ProcessStarter abstracts child process start for launch adapters.
type ProcessStarter interface {
	Start(name string, args []string) (Process, error)
}

// ExecStarter starts commands on the local host with the parent's stdio.
// When Reap is set a goroutine waits on the child and logs its exit so a
// long-running parent does not accumulate zombies.
type ExecStarter struct {
	Dir  string
	Reap bool
}

func (s ExecStarter) Start(name string, args []string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = s.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return Process{}, err
	}
	proc := Process{PID: cmd.Process.Pid, Executable: cmd.Path}
	if s.Reap {
		go reap(cmd)
	} else {
		_ = cmd.Process.Release()
	}
	return proc, nil
}

func reap(cmd *exec.Cmd) {
	err := cmd.Wait()
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Int("pid", cmd.Process.Pid).
		Int("exit", ExitCode(err)).
		Msg("tools.reap child exited")
}

// ExitCode maps a run or start error to a shell-style exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if IsNotFound(err) {
		return 127
	}
	return 1
}

// IsNotFound reports whether err means the executable could not be located.
func IsNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	var execErr *exec.Error
	return errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound)
}
