package issue

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

// PhotoUpload is one photo attached to a report, encoded as a data URL.
type PhotoUpload struct {
	Name    string
	DataURL string
}

// AddIssueInput holds the reporter-supplied fields of a new issue.
type AddIssueInput struct {
	Title       string
	Description string
	Category    domain.IssueCategory
	Priority    domain.Priority
	Location    domain.Location
	Photos      []PhotoUpload
}

func (i *AddIssueInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Location.Address = strings.TrimSpace(i.Location.Address)
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
}

// Validate checks the required report fields.
func (i AddIssueInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, medium, high or critical"})
	}
	if i.Location.Address == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "Please select a location for the issue."})
	}
	if !i.Location.InRange() {
		errs = append(errs, domain.FieldError{Field: "location", Message: "coordinates out of range"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStatusInput requests a lifecycle transition. AssigneeID is optional;
// when present on a claim it must name the caller.
type UpdateStatusInput struct {
	IssueID    uuid.UUID
	Status     domain.IssueStatus
	AssigneeID *uuid.UUID
}

// Validate checks that a status was supplied.
func (i UpdateStatusInput) Validate() error {
	if i.Status == "" {
		return domain.NewValidationError("status", "required")
	}
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}
