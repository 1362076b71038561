package config

import (
	"os"
	"strconv"
	"time"
)

type JudgeConfig struct {
	// InterpreterPath is the host interpreter that runs submitted programs.
	InterpreterPath string
	// DefaultTimeout applies when a request supplies no timeout.
	DefaultTimeout time.Duration
	// MaxTimeout caps client-supplied timeouts.
	MaxTimeout time.Duration
	// TempDir is where program files are materialized; empty means the
	// system default.
	TempDir string
	// MaxProgramBytes caps the uploaded program size.
	MaxProgramBytes int64
}

func NewJudgeConfig() *JudgeConfig {
	interpreter := os.Getenv("JUDGE_INTERPRETER")
	if interpreter == "" {
		interpreter = "python3"
	}

	defaultTimeoutMs, err := strconv.Atoi(os.Getenv("JUDGE_DEFAULT_TIMEOUT_MS"))
	if err != nil || defaultTimeoutMs <= 0 {
		defaultTimeoutMs = 5000
	}
	maxTimeoutMs, err := strconv.Atoi(os.Getenv("JUDGE_MAX_TIMEOUT_MS"))
	if err != nil || maxTimeoutMs <= 0 {
		maxTimeoutMs = 20000
	}

	maxProgramBytes, err := strconv.ParseInt(os.Getenv("JUDGE_MAX_PROGRAM_BYTES"), 10, 64)
	if err != nil || maxProgramBytes <= 0 {
		maxProgramBytes = 1 << 20
	}

	return &JudgeConfig{
		InterpreterPath: interpreter,
		DefaultTimeout:  time.Duration(defaultTimeoutMs) * time.Millisecond,
		MaxTimeout:      time.Duration(maxTimeoutMs) * time.Millisecond,
		TempDir:         os.Getenv("JUDGE_TEMP_DIR"),
		MaxProgramBytes: maxProgramBytes,
	}
}
