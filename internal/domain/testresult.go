package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FailureKind tags why a test case did not pass. Scoring only ever looks at
// Passed; the kind exists so callers and tests can branch without parsing
// error message text.
type FailureKind string

const (
	FailureRuntime     FailureKind = "RUNTIME_ERROR"
	FailureTimeout     FailureKind = "TIMEOUT"
	FailureLaunch      FailureKind = "LAUNCH_ERROR"
	FailureWrongAnswer FailureKind = "WRONG_ANSWER"
	FailureInternal    FailureKind = "INTERNAL_ERROR"
)

// TestCaseResult is the verdict for a single test case.
//
// Input, ActualOutput and ExpectedOutput are set exactly when the program
// exited 0 and outputs were compared; a crash or timeout is reported through
// ErrorMessage alone. Results are never mutated after creation.
type TestCaseResult struct {
	TestCaseID      uuid.UUID   `json:"testCaseId"`
	Passed          bool        `json:"passed"`
	Kind            FailureKind `json:"kind,omitempty"`
	Input           *string     `json:"input,omitempty"`
	ActualOutput    *string     `json:"actualOutput,omitempty"`
	ExpectedOutput  *string     `json:"expectedOutput,omitempty"`
	ErrorMessage    string      `json:"error,omitempty"`
	ExecutionTimeMs int64       `json:"executionTimeMs"`
}

// JudgeReport aggregates the per-case results of judging one submission.
// Results preserve the order the test cases were supplied in, so position i
// can be zipped back to the problem's i-th test case.
type JudgeReport struct {
	SubmissionID uuid.UUID        `json:"submissionId"`
	PassedCount  int              `json:"passedCount"`
	TotalCount   int              `json:"totalCount"`
	Score        string           `json:"score"`
	Results      []TestCaseResult `json:"results"`
	CompletedAt  time.Time        `json:"completedAt"`
}

// NewJudgeReport derives the aggregate counts from the collected results.
func NewJudgeReport(submissionID uuid.UUID, results []TestCaseResult) *JudgeReport {
	passed := 0
	for _, res := range results {
		if res.Passed {
			passed++
		}
	}
	return &JudgeReport{
		SubmissionID: submissionID,
		PassedCount:  passed,
		TotalCount:   len(results),
		Score:        fmt.Sprintf("%d/%d", passed, len(results)),
		Results:      results,
		CompletedAt:  time.Now(),
	}
}
