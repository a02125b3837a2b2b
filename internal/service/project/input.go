package project

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Paging limits of project listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CreateInput holds parameters for publishing a project.
type CreateInput struct {
	Name        string
	Description string
	TechStack   string
	RepoURL     string
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.TechStack = strings.TrimSpace(i.TechStack)
	i.RepoURL = strings.TrimSpace(i.RepoURL)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if utf8.RuneCountInString(i.TechStack) > 500 {
		errs = append(errs, domain.FieldError{Field: "techStack", Message: "too long"})
	}
	if i.RepoURL != "" {
		u, err := url.Parse(i.RepoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "repoUrl", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListResult is one page of projects.
type ListResult struct {
	Items []domain.Project
	Total int
	Page  int
	Size  int
}

func pageFilter(page, size int) (int, int, error) {
	var errs []domain.FieldError
	if page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 0"})
	}
	if size < 0 || size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be between 1 and 100"})
	}
	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}
	if size == 0 {
		size = DefaultPageSize
	}
	return size, page * size, nil
}
