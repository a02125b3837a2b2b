package collab

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Paging limits of the admin listing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListResult is one page of contribution requests.
type ListResult struct {
	Items []domain.ContributionRequest
	Total int
	Page  int
	Size  int
}

// ListForProject returns every request filed for projectID, newest first.
// Only the project owner and admins may list them.
func (s *Service) ListForProject(ctx context.Context, projectID int64) ([]domain.ContributionRequest, error) {
	if _, err := authz.Authenticated(ctx); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("collab.ListForProject: %w", err)
	}
	if _, err := authz.RequireOwnerOrAdmin(ctx, project.OwnerID); err != nil {
		return nil, err
	}

	items, _, err := s.requests.List(ctx, domain.RequestFilter{ProjectID: &project.ID})
	if err != nil {
		return nil, fmt.Errorf("collab.ListForProject: %w", err)
	}
	return items, nil
}

// MyRequests returns the requests filed by the caller, newest first.
func (s *Service) MyRequests(ctx context.Context) ([]domain.ContributionRequest, error) {
	p, err := authz.Authenticated(ctx)
	if err != nil {
		return nil, err
	}

	items, _, err := s.requests.List(ctx, domain.RequestFilter{RequesterID: &p.ID})
	if err != nil {
		return nil, fmt.Errorf("collab.MyRequests: %w", err)
	}
	return items, nil
}

// PendingForOwner returns the undecided requests on the caller's projects.
func (s *Service) PendingForOwner(ctx context.Context) ([]domain.ContributionRequest, error) {
	p, err := authz.Authenticated(ctx)
	if err != nil {
		return nil, err
	}

	pending := domain.RequestStatusPending
	items, _, err := s.requests.List(ctx, domain.RequestFilter{OwnerID: &p.ID, Status: &pending})
	if err != nil {
		return nil, fmt.Errorf("collab.PendingForOwner: %w", err)
	}
	return items, nil
}

// ListAll returns a page of all requests, optionally filtered by status. Admin only.
func (s *Service) ListAll(ctx context.Context, status string, page, size int) (*ListResult, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if status != "" && !domain.RequestStatus(status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 0"})
	}
	if size < 0 || size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be between 1 and 100"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if size == 0 {
		size = DefaultPageSize
	}

	f := domain.RequestFilter{Limit: size, Offset: page * size}
	if status != "" {
		st := domain.RequestStatus(status)
		f.Status = &st
	}

	items, total, err := s.requests.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("collab.ListAll: %w", err)
	}
	return &ListResult{Items: items, Total: total, Page: page, Size: size}, nil
}
