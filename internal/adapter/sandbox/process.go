// package sandbox contains the OS-process implementation of the Sandbox port.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/core/ports/secondary"
)

var _ secondary.Sandbox = (*ProcessSandbox)(nil)

// ProcessSandbox runs a program as one child process of the host interpreter
// per call. Isolation is the OS process boundary only: the program runs with
// the judge's own privileges, which is the platform's accepted risk.
type ProcessSandbox struct {
	interpreter string
	logger      primary.Logger
}

// NewProcessSandbox creates a sandbox that executes programs with the given
// interpreter binary (e.g. "python3").
func NewProcessSandbox(interpreter string, logger primary.Logger) *ProcessSandbox {
	return &ProcessSandbox{
		interpreter: interpreter,
		logger:      logger,
	}
}

// Start launches the interpreter on the program file with stdin, stdout and
// stderr piped. Stdin is fed from the supplied bytes and closed at EOF, so a
// program that keeps reading input terminates its read instead of hanging.
func (s *ProcessSandbox) Start(ctx context.Context, program string, stdin []byte) (secondary.Execution, error) {
	cmd := exec.Command(s.interpreter, program)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Own process group so Kill reaches any children the program forks.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		s.logger.Error("Failed to launch program", "interpreter", s.interpreter, "program", program, "error", err)
		return nil, fmt.Errorf("failed to launch program: %w", err)
	}

	e := &execution{
		cmd:       cmd,
		stdout:    &stdout,
		stderr:    &stderr,
		startedAt: time.Now(),
		done:      make(chan error, 1),
	}
	go func() {
		e.done <- cmd.Wait()
	}()
	return e, nil
}

type execution struct {
	cmd       *exec.Cmd
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	startedAt time.Time
	done      chan error
}

// Wait blocks until exit or timeout. The timeout path kills the whole process
// group and then still waits for the exit notification, so the child is
// always reaped and the stdio copiers have finished before buffers are read.
func (e *execution) Wait(timeout time.Duration) secondary.Outcome {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-e.done:
		return e.outcome(err, false)
	case <-timer.C:
		_ = e.Kill()
		err := <-e.done
		return e.outcome(err, true)
	}
}

func (e *execution) outcome(waitErr error, timedOut bool) secondary.Outcome {
	out := secondary.Outcome{
		TimedOut: timedOut,
		Stdout:   e.stdout.Bytes(),
		Stderr:   e.stderr.Bytes(),
		Duration: time.Since(e.startedAt),
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		} else {
			out.ExitCode = -1
		}
	}
	return out
}

// Kill terminates the process group with SIGKILL.
func (e *execution) Kill() error {
	if e.cmd.Process == nil {
		return nil
	}
	if err := syscall.Kill(-e.cmd.Process.Pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("failed to kill process group %d: %w", e.cmd.Process.Pid, err)
	}
	return nil
}
