package auth

import (
	"net/mail"
	"strings"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

const minPasswordLen = 6

// RegisterInput holds the fields of a registration request. Role-specific
// fields are read according to Role.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            domain.Role

	Village        string
	Qualifications string
	IDNumber       string
	Skills         []string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Phone = strings.TrimSpace(i.Phone)
	i.Village = strings.TrimSpace(i.Village)
	i.Qualifications = strings.TrimSpace(i.Qualifications)
	i.IDNumber = strings.TrimSpace(i.IDNumber)
}

// Validate checks required fields and the role-specific profile.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if i.ConfirmPassword != "" && i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}

	switch i.Role {
	case "":
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	case domain.RoleCitizen:
		if i.Village == "" {
			errs = append(errs, domain.FieldError{Field: "village", Message: "Village name is required for citizens"})
		}
	case domain.RoleVolunteer:
		if i.Qualifications == "" || i.IDNumber == "" {
			errs = append(errs, domain.FieldError{Field: "qualifications", Message: "Qualifications and Aadhar number are required for volunteers"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be citizen or volunteer"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// profile builds the role variant. Call only after Validate.
func (i RegisterInput) profile() domain.Profile {
	if i.Role == domain.RoleVolunteer {
		return domain.Volunteer{Qualifications: i.Qualifications, IDNumber: i.IDNumber, Skills: i.Skills}
	}
	return domain.Citizen{Village: i.Village}
}

// LoginInput identifies an account by email or phone number. A non-empty
// Role must match the account's role.
type LoginInput struct {
	Identifier string
	Password   string
	Role       domain.Role
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Identifier) == "" {
		errs = append(errs, domain.FieldError{Field: "identifier", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be citizen or volunteer"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i LoginInput) isEmail() bool {
	return strings.Contains(i.Identifier, "@")
}
