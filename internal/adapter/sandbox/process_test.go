package sandbox_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/codearena-2025.net/internal/adapter/sandbox"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// writeScript materializes a shell script the way the judge materializes a
// submitted program. The tests use sh as the interpreter so they run on any
// Unix box without a Python toolchain.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.sh")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessSandbox_StdinRoundTrip(t *testing.T) {
	sb := sandbox.NewProcessSandbox("sh", nopLogger{})
	prog := writeScript(t, "cat\n")

	exec, err := sb.Start(context.Background(), prog, []byte("hello\n"))
	if err != nil {
		t.Fatal(err)
	}
	outcome := exec.Wait(5 * time.Second)

	if outcome.TimedOut {
		t.Fatal("unexpected timeout")
	}
	if outcome.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %q", outcome.ExitCode, outcome.Stderr)
	}
	if got := string(outcome.Stdout); got != "hello\n" {
		t.Errorf("stdout = %q, want hello", got)
	}
}

func TestProcessSandbox_StdinClosedAfterWrite(t *testing.T) {
	// A program that reads past the supplied input must see EOF, not hang.
	sb := sandbox.NewProcessSandbox("sh", nopLogger{})
	prog := writeScript(t, "cat >/dev/null\ncat >/dev/null\necho done\n")

	exec, err := sb.Start(context.Background(), prog, []byte("only one line\n"))
	if err != nil {
		t.Fatal(err)
	}
	outcome := exec.Wait(5 * time.Second)

	if outcome.TimedOut {
		t.Fatal("program hung waiting for more input")
	}
	if !strings.Contains(string(outcome.Stdout), "done") {
		t.Errorf("stdout = %q, want done", outcome.Stdout)
	}
}

func TestProcessSandbox_NonZeroExit(t *testing.T) {
	sb := sandbox.NewProcessSandbox("sh", nopLogger{})
	prog := writeScript(t, "echo boom >&2\nexit 7\n")

	exec, err := sb.Start(context.Background(), prog, nil)
	if err != nil {
		t.Fatal(err)
	}
	outcome := exec.Wait(5 * time.Second)

	if outcome.ExitCode != 7 {
		t.Errorf("exit code = %d, want 7", outcome.ExitCode)
	}
	if !strings.Contains(string(outcome.Stderr), "boom") {
		t.Errorf("stderr = %q, want boom", outcome.Stderr)
	}
}

func TestProcessSandbox_Timeout(t *testing.T) {
	sb := sandbox.NewProcessSandbox("sh", nopLogger{})
	prog := writeScript(t, "sleep 30\n")

	started := time.Now()
	exec, err := sb.Start(context.Background(), prog, nil)
	if err != nil {
		t.Fatal(err)
	}
	outcome := exec.Wait(300 * time.Millisecond)
	elapsed := time.Since(started)

	if !outcome.TimedOut {
		t.Fatal("expected timeout")
	}
	// Wait returning means the child was killed and reaped; it must not run
	// anywhere near the full sleep.
	if elapsed > 2*time.Second {
		t.Errorf("Wait took %v, process was not killed promptly", elapsed)
	}
}

func TestProcessSandbox_LaunchFailure(t *testing.T) {
	sb := sandbox.NewProcessSandbox("/nonexistent/interpreter", nopLogger{})
	prog := writeScript(t, "echo hi\n")

	if _, err := sb.Start(context.Background(), prog, nil); err == nil {
		t.Fatal("expected launch error for missing interpreter")
	}
}
