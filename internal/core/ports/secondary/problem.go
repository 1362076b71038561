package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/domain"
)

// ProblemRepository loads problems and their ordered test cases.
type ProblemRepository interface {
	// GetProblem retrieves a problem by ID, nil if not found
	GetProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)

	// GetTestCases retrieves a problem's test cases ordered by position
	GetTestCases(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error)
}
