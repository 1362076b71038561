// package reportrepository contains the PostgreSQL implementation of the
// ReportRepository port.
package reportrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/domain"
	querybuilder "gitlab.com/codearena-2025.net/internal/utils"
)

// ReportRepository implements the ReportRepository interface with PostgreSQL
type ReportRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB, logger primary.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// SaveReport saves a judge report and its per-case results in one
// transaction. Results keep their position so readers can restore order.
func (r *ReportRepository) SaveReport(ctx context.Context, report *domain.JudgeReport) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reportQuery := `
		INSERT INTO judge_reports (
			submission_id, passed_count, total_count, score, completed_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (submission_id) DO UPDATE SET
			passed_count = EXCLUDED.passed_count,
			total_count = EXCLUDED.total_count,
			score = EXCLUDED.score,
			completed_at = EXCLUDED.completed_at
	`
	_, err = tx.ExecContext(
		ctx,
		reportQuery,
		report.SubmissionID,
		report.PassedCount,
		report.TotalCount,
		report.Score,
		report.CompletedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save judge report", "submissionId", report.SubmissionID, "error", err)
		return fmt.Errorf("failed to save judge report: %w", err)
	}

	if len(report.Results) > 0 {
		builder := querybuilder.NewInsertBuilder("public").
			Into("judge_report_results").
			Insert(
				"submission_id",
				"position",
				"test_case_id",
				"passed",
				"kind",
				"input",
				"actual_output",
				"expected_output",
				"error_message",
				"execution_time_ms",
			)
		for i, res := range report.Results {
			builder.Values(
				report.SubmissionID,
				i,
				res.TestCaseID,
				res.Passed,
				string(res.Kind),
				res.Input,
				res.ActualOutput,
				res.ExpectedOutput,
				res.ErrorMessage,
				res.ExecutionTimeMs,
			)
		}
		query, args := builder.OnConflictDoNothing("submission_id", "position").Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("Failed to save test case results", "submissionId", report.SubmissionID, "error", err)
			return fmt.Errorf("failed to save test case results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit judge report: %w", err)
	}
	return nil
}

// GetReport retrieves a judge report with its results by submission ID
func (r *ReportRepository) GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error) {
	reportQuery := `
		SELECT submission_id, passed_count, total_count, score, completed_at
		FROM judge_reports
		WHERE submission_id = $1
	`

	var report domain.JudgeReport
	err := r.db.QueryRowContext(ctx, reportQuery, submissionID).Scan(
		&report.SubmissionID,
		&report.PassedCount,
		&report.TotalCount,
		&report.Score,
		&report.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get judge report", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get judge report: %w", err)
	}

	resultsQuery := `
		SELECT test_case_id, passed, kind, input, actual_output,
			   expected_output, error_message, execution_time_ms
		FROM judge_report_results
		WHERE submission_id = $1
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, resultsQuery, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query test case results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res domain.TestCaseResult
		var kind string
		if err := rows.Scan(
			&res.TestCaseID,
			&res.Passed,
			&kind,
			&res.Input,
			&res.ActualOutput,
			&res.ExpectedOutput,
			&res.ErrorMessage,
			&res.ExecutionTimeMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test case result: %w", err)
		}
		res.Kind = domain.FailureKind(kind)
		report.Results = append(report.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test case results: %w", err)
	}

	return &report, nil
}
