package domain

import "github.com/google/uuid"

// TestCase is one (input, expected output) check owned by a problem.
// Immutable once created; the judge consumes it read-only.
type TestCase struct {
	ID             uuid.UUID
	ProblemID      uuid.UUID
	Input          string
	ExpectedOutput string
	IsHidden       bool
	Position       int
}
