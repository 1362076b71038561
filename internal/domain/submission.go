package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one submitted program to be judged. SourcePath points
// at a materialized copy of the program text; the submission service owns
// creating and deleting that file, the judge only reads it.
type Submission struct {
	ID          uuid.UUID
	UserID      string
	Language    string
	ProblemID   uuid.UUID
	SourcePath  string
	SubmittedAt time.Time
}

// NewSubmission creates a new submission
func NewSubmission(userID, language string, problemID uuid.UUID, sourcePath string) *Submission {
	return &Submission{
		ID:          uuid.New(),
		UserID:      userID,
		Language:    language,
		ProblemID:   problemID,
		SourcePath:  sourcePath,
		SubmittedAt: time.Now(),
	}
}
