package submission

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/core/ports/secondary"
	"gitlab.com/codearena-2025.net/internal/core/services/judge"
	"gitlab.com/codearena-2025.net/internal/domain"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	judgeService judge.IJudgeService
	problemRepo  secondary.ProblemRepository
	reportRepo   secondary.ReportRepository
	reportCache  secondary.ReportCache
	tempDir      string
	logger       primary.Logger
}

// NewSubmissionService creates a new submission service. tempDir is where
// program files are materialized; empty means the system default.
func NewSubmissionService(
	judgeService judge.IJudgeService,
	problemRepo secondary.ProblemRepository,
	reportRepo secondary.ReportRepository,
	reportCache secondary.ReportCache,
	tempDir string,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		judgeService: judgeService,
		problemRepo:  problemRepo,
		reportRepo:   reportRepo,
		reportCache:  reportCache,
		tempDir:      tempDir,
		logger:       logger,
	}
}

// ExecuteSubmission loads the problem's test cases, judges the program and
// records the report. The program file is deleted on every exit path,
// including judge timeouts and load failures.
func (s *SubmissionService) ExecuteSubmission(ctx context.Context, userID string, problemID uuid.UUID, source []byte, timeout time.Duration) (*domain.JudgeReport, error) {
	programPath, cleanup, err := s.materializeProgram(source)
	if err != nil {
		s.logger.Error("Failed to write program file", "error", err)
		return nil, fmt.Errorf("failed to write program file: %w", err)
	}
	defer cleanup()

	problem, err := s.problemRepo.GetProblem(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if problem == nil {
		return nil, ErrProblemNotFound
	}

	testCases, err := s.problemRepo.GetTestCases(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to load test cases: %w", err)
	}
	if len(testCases) == 0 {
		return nil, ErrNoTestCases
	}

	sub := domain.NewSubmission(userID, "python", problemID, programPath)
	report := s.judgeService.Judge(ctx, sub.ID, programPath, testCases, timeout)

	// The report goes back to the caller either way; recording failures are
	// logged, not fatal.
	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.logger.Error("Failed to save judge report", "submissionId", sub.ID, "error", err)
	}
	if s.reportCache != nil {
		if err := s.reportCache.SetReport(ctx, report); err != nil {
			s.logger.Warn("Failed to cache judge report", "submissionId", sub.ID, "error", err)
		}
	}

	return report, nil
}

// GetReport retrieves a report, trying the cache before Postgres.
func (s *SubmissionService) GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error) {
	if s.reportCache != nil {
		report, err := s.reportCache.GetReport(ctx, submissionID)
		if err != nil {
			s.logger.Warn("Report cache lookup failed", "submissionId", submissionID, "error", err)
		} else if report != nil {
			return report, nil
		}
	}

	report, err := s.reportRepo.GetReport(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to load judge report", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to load judge report: %w", err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// materializeProgram writes the submitted source to a uniquely named file
// and returns its path with a cleanup function. Unique naming via
// os.CreateTemp avoids any filename injection from user-supplied names.
func (s *SubmissionService) materializeProgram(source []byte) (string, func(), error) {
	f, err := os.CreateTemp(s.tempDir, "submission-*.py")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove program file", "path", filepath.Base(path), "error", err)
		}
	}

	if _, err := f.Write(source); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
