package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location pins an issue to a place. Address is the human-readable form,
// either typed by the reporter or produced by reverse geocoding.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// InRange reports whether Lat and Lng are finite and on the globe.
func (l Location) InRange() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// DefaultLocation is used when no position is known (New Delhi).
var DefaultLocation = Location{Lat: 28.6139, Lng: 77.2090}

// Issue is a reported infrastructure problem tracked through its lifecycle.
type Issue struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    IssueCategory
	Status      IssueStatus
	Priority    Priority
	ReportedBy  uuid.UUID
	AssignedTo  *uuid.UUID
	Location    Location
	Photos      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

// NewIssue builds a freshly reported issue. CreatedAt and UpdatedAt are equal.
func NewIssue(reporter uuid.UUID, now time.Time) *Issue {
	return &Issue{
		ID:         uuid.New(),
		Status:     StatusReported,
		ReportedBy: reporter,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsAvailable reports whether a volunteer may claim the issue.
func (i *Issue) IsAvailable() bool {
	return i.Status == StatusReported && i.AssignedTo == nil
}

// IsAssignedTo reports whether userID is the current assignee.
func (i *Issue) IsAssignedTo(userID uuid.UUID) bool {
	return i.AssignedTo != nil && *i.AssignedTo == userID
}

// next lists the forward edges of the lifecycle. Closing is handled separately
// since it is reachable from every open state.
var next = map[IssueStatus]IssueStatus{
	StatusReported:    StatusUnderReview,
	StatusUnderReview: StatusInProgress,
	StatusInProgress:  StatusResolved,
}

// CanTransition reports whether the lifecycle has an edge from s to to.
func (s IssueStatus) CanTransition(to IssueStatus) bool {
	if s == StatusClosed {
		return false
	}
	if to == StatusClosed {
		return true
	}
	return next[s] == to
}

// Transition moves the issue to status `to` on behalf of actor.
//
// Claiming (reported -> under-review) is reserved for volunteers and assigns
// the issue to the actor. Later forward steps are reserved for the assignee.
// Closing is allowed for the reporter or the assignee. ResolvedAt is stamped
// only when the issue becomes resolved.
func (i *Issue) Transition(actor *User, to IssueStatus, now time.Time) error {
	if !to.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	if !i.Status.CanTransition(to) {
		return fmt.Errorf("issue %s: cannot move from %s to %s: %w", i.ID, i.Status, to, ErrConflict)
	}

	switch to {
	case StatusUnderReview:
		if i.AssignedTo != nil {
			return fmt.Errorf("issue %s: already claimed: %w", i.ID, ErrConflict)
		}
		if !actor.IsVolunteer() {
			return fmt.Errorf("issue %s: only volunteers can claim issues: %w", i.ID, ErrForbidden)
		}
		id := actor.ID
		i.AssignedTo = &id
	case StatusInProgress, StatusResolved:
		if !i.IsAssignedTo(actor.ID) {
			return fmt.Errorf("issue %s: only the assigned volunteer can update it: %w", i.ID, ErrForbidden)
		}
	case StatusClosed:
		if actor.ID != i.ReportedBy && !i.IsAssignedTo(actor.ID) {
			return fmt.Errorf("issue %s: only the reporter or assignee can close it: %w", i.ID, ErrForbidden)
		}
	}

	i.Status = to
	i.UpdatedAt = now
	if to == StatusResolved {
		t := now
		i.ResolvedAt = &t
	}
	return nil
}

// IssueFilter narrows issue listings. Zero values mean "no filter".
type IssueFilter struct {
	// Statuses matches any of the listed statuses.
	Statuses   []IssueStatus
	Category   IssueCategory
	ReportedBy *uuid.UUID
	AssignedTo *uuid.UUID
	// Available restricts to reported issues without an assignee.
	Available bool
}
