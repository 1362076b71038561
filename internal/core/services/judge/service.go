package judge

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/domain"
)

// IJudgeService defines the interface for judging a submitted program
// against test cases. Both operations are total: every failure mode of a
// test case run is captured in its TestCaseResult, never returned as an
// error.
type IJudgeService interface {
	// RunTestCase executes the program once against a single test case with
	// a wall-clock timeout. It always produces a result and never panics.
	RunTestCase(ctx context.Context, programPath string, testCase *domain.TestCase, timeout time.Duration) domain.TestCaseResult

	// Judge runs every test case in order, strictly sequentially, and
	// aggregates the results. An empty test-case list yields a 0/0 report.
	Judge(ctx context.Context, submissionID uuid.UUID, programPath string, testCases []*domain.TestCase, timeout time.Duration) *domain.JudgeReport
}
