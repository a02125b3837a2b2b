package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt limit
	minSemester    = 1
	maxSemester    = 8
)

// RegisterInput holds parameters for registration.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	RollNumber string
	Course     string
	Semester   int
}

func (i *RegisterInput) normalize() {
	i.FullName = strings.TrimSpace(i.FullName)
	i.Email = domain.NormalizeEmail(i.Email)
	i.RollNumber = strings.TrimSpace(i.RollNumber)
	i.Course = strings.TrimSpace(i.Course)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "required"})
	} else if utf8.RuneCountInString(i.FullName) > 100 {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.RollNumber == "" {
		errs = append(errs, domain.FieldError{Field: "rollNumber", Message: "required"})
	}
	if i.Course == "" {
		errs = append(errs, domain.FieldError{Field: "course", Message: "required"})
	}
	if i.Semester < minSemester || i.Semester > maxSemester {
		errs = append(errs, domain.FieldError{Field: "semester", Message: "must be between 1 and 8"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
