package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena-2025.net/internal/domain"
)

// ReportRepository defines the interface for storing and retrieving judge reports
type ReportRepository interface {
	// SaveReport saves a judge report and its per-case results
	SaveReport(ctx context.Context, report *domain.JudgeReport) error

	// GetReport retrieves a judge report by submission ID, nil if not found
	GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error)
}

// ReportCache is a read-through cache for judge reports keyed by submission.
type ReportCache interface {
	SetReport(ctx context.Context, report *domain.JudgeReport) error
	GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error)
}
