package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName   *string
	RollNumber *string
	Course     *string
	Semester   *int
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil {
		name := strings.TrimSpace(*i.FullName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "fullName", Message: "required"})
		} else if utf8.RuneCountInString(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "fullName", Message: "too long"})
		}
	}
	if i.RollNumber != nil && strings.TrimSpace(*i.RollNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "rollNumber", Message: "must not be empty"})
	}
	if i.Course != nil && strings.TrimSpace(*i.Course) == "" {
		errs = append(errs, domain.FieldError{Field: "course", Message: "must not be empty"})
	}
	if i.Semester != nil && (*i.Semester < 1 || *i.Semester > 8) {
		errs = append(errs, domain.FieldError{Field: "semester", Message: "must be between 1 and 8"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateProfileInput) apply(p *domain.Principal) {
	if i.FullName != nil {
		p.FullName = strings.TrimSpace(*i.FullName)
	}
	if i.RollNumber != nil {
		p.RollNumber = strings.TrimSpace(*i.RollNumber)
	}
	if i.Course != nil {
		p.Course = strings.TrimSpace(*i.Course)
	}
	if i.Semester != nil {
		p.Semester = *i.Semester
	}
}
