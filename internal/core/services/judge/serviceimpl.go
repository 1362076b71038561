package judge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/core/ports/secondary"
	"gitlab.com/codearena-2025.net/internal/domain"
)

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService implements the IJudgeService interface on top of a Sandbox.
// It holds no mutable state between calls; the only shared resource is the
// read-only program file.
type JudgeService struct {
	sandbox secondary.Sandbox
	logger  primary.Logger
}

// NewJudgeService creates a new judge service
func NewJudgeService(sandbox secondary.Sandbox, logger primary.Logger) *JudgeService {
	return &JudgeService{
		sandbox: sandbox,
		logger:  logger,
	}
}

// RunTestCase runs one test case in its own process.
//
// Per-case state machine: Spawning -> Running -> {Completed(code), TimedOut,
// SpawnFailed}. Completed(0) goes through output comparison; every other
// terminal state fails with an error message and no output fields.
func (s *JudgeService) RunTestCase(ctx context.Context, programPath string, testCase *domain.TestCase, timeout time.Duration) (result domain.TestCaseResult) {
	result = domain.TestCaseResult{TestCaseID: testCase.ID}

	// A fault in the orchestration itself must surface as a failed result,
	// not abort the batch.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Unexpected error while judging test case", "testCaseId", testCase.ID, "panic", r)
			result = domain.TestCaseResult{
				TestCaseID:   testCase.ID,
				Passed:       false,
				Kind:         domain.FailureInternal,
				ErrorMessage: "error executing test case",
			}
		}
	}()

	run, err := s.sandbox.Start(ctx, programPath, []byte(testCase.Input))
	if err != nil {
		result.Kind = domain.FailureLaunch
		result.ErrorMessage = err.Error()
		return result
	}

	outcome := run.Wait(timeout)
	result.ExecutionTimeMs = outcome.Duration.Milliseconds()

	if outcome.TimedOut {
		result.Kind = domain.FailureTimeout
		result.ErrorMessage = fmt.Sprintf("time limit exceeded (%dms)", timeout.Milliseconds())
		return result
	}

	if outcome.ExitCode != 0 {
		result.Kind = domain.FailureRuntime
		result.ErrorMessage = strings.TrimSpace(string(outcome.Stderr))
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("program exited with code %d", outcome.ExitCode)
		}
		return result
	}

	actual := trimOutput(string(outcome.Stdout))
	expected := trimOutput(testCase.ExpectedOutput)
	input := testCase.Input
	result.Input = &input
	result.ActualOutput = &actual
	result.ExpectedOutput = &expected

	if actual == expected {
		result.Passed = true
	} else {
		result.Kind = domain.FailureWrongAnswer
	}
	return result
}

// Judge runs all test cases sequentially in their supplied order. A failure
// on one case never prevents the remaining cases from running, and there is
// no cross-case cancellation: worst-case wall time is len(testCases)*timeout.
func (s *JudgeService) Judge(ctx context.Context, submissionID uuid.UUID, programPath string, testCases []*domain.TestCase, timeout time.Duration) *domain.JudgeReport {
	s.logger.Info("Judging submission", "submissionId", submissionID, "testCases", len(testCases), "timeout", timeout)

	results := make([]domain.TestCaseResult, 0, len(testCases))
	for _, testCase := range testCases {
		results = append(results, s.RunTestCase(ctx, programPath, testCase, timeout))
	}

	report := domain.NewJudgeReport(submissionID, results)
	s.logger.Info("Judging completed", "submissionId", submissionID, "score", report.Score)
	return report
}
