package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered citizen or volunteer. The role-specific fields live
// in Profile, whose concrete type determines the role.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role returns the role implied by the user's profile variant.
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// IsVolunteer reports whether the user carries a Volunteer profile.
func (u *User) IsVolunteer() bool {
	_, ok := u.Profile.(Volunteer)
	return ok
}

// Profile is the sealed union of role-specific user data.
// Implemented only by Citizen and Volunteer.
type Profile interface {
	Role() Role
	isProfile()
}

// Citizen reports issues from a village.
type Citizen struct {
	Village string
}

func (Citizen) Role() Role { return RoleCitizen }
func (Citizen) isProfile() {}

// Volunteer claims and resolves issues.
type Volunteer struct {
	Qualifications string
	IDNumber       string
	Skills         []string
}

func (Volunteer) Role() Role { return RoleVolunteer }
func (Volunteer) isProfile() {}

// UserSummary is the public view of a user returned alongside tokens and issues.
type UserSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  Role
}

// Summary projects the user onto its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role(),
	}
}

// PromoteToVolunteer replaces a citizen's profile with v. Volunteers are
// rejected with ErrConflict.
func (u *User) PromoteToVolunteer(v Volunteer, now time.Time) error {
	if u.IsVolunteer() {
		return fmt.Errorf("user %s: already a volunteer: %w", u.ID, ErrConflict)
	}
	var errs []FieldError
	if strings.TrimSpace(v.Qualifications) == "" {
		errs = append(errs, FieldError{Field: "qualifications", Message: "required"})
	}
	if strings.TrimSpace(v.IDNumber) == "" {
		errs = append(errs, FieldError{Field: "idNumber", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	u.Profile = v
	u.UpdatedAt = now
	return nil
}
