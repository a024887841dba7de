package domain

import (
	"time"

	"github.com/google/uuid"
)

// Solution is a proposed remedy for an issue. Only Votes changes after creation.
type Solution struct {
	ID          uuid.UUID
	IssueID     uuid.UUID
	Title       string
	Description string
	Cost        string
	Difficulty  Difficulty
	Materials   []string
	Steps       []string
	ProvidedBy  uuid.UUID
	Votes       int
	CreatedAt   time.Time
}

// EducationalContent is reference material shown in the education hub.
type EducationalContent struct {
	ID           uuid.UUID
	Title        string
	Category     string
	Content      string
	Language     Language
	Downloadable bool
	Views        int
	CreatedAt    time.Time
}

// ContentFilter narrows educational content listings. Empty fields and the
// literal "all" mean no filtering on that field.
type ContentFilter struct {
	Search   string
	Category string
	Language string
}

// FilterAll is the sentinel value a client sends to disable a filter.
const FilterAll = "all"
