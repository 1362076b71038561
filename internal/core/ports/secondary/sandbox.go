package secondary

import (
	"context"
	"time"
)

// Outcome is the terminal observation of one sandboxed run.
type Outcome struct {
	ExitCode int
	TimedOut bool
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Execution is a handle on one started program run.
type Execution interface {
	// Wait blocks until the process exits or the wall-clock timeout elapses.
	// On timeout the process is force-killed and reaped before Wait returns;
	// a leaked process is a defect. Wait must be called exactly once.
	Wait(timeout time.Duration) Outcome

	// Kill force-terminates the process. Safe to call after exit.
	Kill() error
}

// Sandbox isolates the process-level concern of running an untrusted
// program. Alternate isolation strategies (container, WASM) substitute here
// without touching comparison or aggregation logic.
type Sandbox interface {
	// Start launches the program with stdin pre-loaded; the input stream is
	// closed once fully written so programs blocking on further input cannot
	// hang the judge. An error means the process never started.
	Start(ctx context.Context, program string, stdin []byte) (Execution, error)
}
