// package problemrepository contains the PostgreSQL implementation of the
// ProblemRepository port.
package problemrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/domain"
)

// ProblemRepository implements the ProblemRepository interface with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

// GetProblem retrieves a problem from PostgreSQL by ID
func (r *ProblemRepository) GetProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	query := `
		SELECT id, slug, title
		FROM problems
		WHERE id = $1
	`

	var problem domain.Problem
	err := r.db.QueryRowContext(ctx, query, problemID).Scan(
		&problem.ID,
		&problem.Slug,
		&problem.Title,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return &problem, nil
}

// GetTestCases retrieves a problem's test cases ordered by position
func (r *ProblemRepository) GetTestCases(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	query := `
		SELECT id, problem_id, input, expected_output, is_hidden, position
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, problemID)
	if err != nil {
		r.logger.Error("Failed to query test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to query test cases: %w", err)
	}
	defer rows.Close()

	var testCases []*domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(
			&tc.ID,
			&tc.ProblemID,
			&tc.Input,
			&tc.ExpectedOutput,
			&tc.IsHidden,
			&tc.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test case: %w", err)
		}
		testCases = append(testCases, &tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test cases: %w", err)
	}

	return testCases, nil
}
