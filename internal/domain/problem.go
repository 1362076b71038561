package domain

import "github.com/google/uuid"

// Problem is the minimal projection of a contest problem the judge needs.
// The full problem record (statement, limits, contest linkage) lives in the
// platform service.
type Problem struct {
	ID    uuid.UUID
	Slug  string
	Title string
}
