package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/domain"
)

var (
	ErrProblemNotFound = errors.New("problem not found")
	ErrNoTestCases     = errors.New("problem has no test cases")
	ErrReportNotFound  = errors.New("report not found")
)

// ISubmissionService defines the interface for handling one submission end
// to end: materialize the program, judge it, record the report.
type ISubmissionService interface {
	// ExecuteSubmission judges the given program source against the
	// problem's test cases and returns the report. Request-level failures
	// (unknown problem, no test cases) come back as errors; per-test-case
	// failures are inside the report.
	ExecuteSubmission(ctx context.Context, userID string, problemID uuid.UUID, source []byte, timeout time.Duration) (*domain.JudgeReport, error)

	// GetReport retrieves a previously recorded report by submission ID
	GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error)
}
