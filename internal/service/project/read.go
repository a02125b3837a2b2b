package project

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

// Get returns a project and counts the view. Projects that are not yet
// approved are visible only to their owner and to admins.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}

	if p.Status != domain.ProjectStatusApproved {
		caller, ok := ctxutil.PrincipalFromCtx(ctx)
		if !ok || (!p.IsOwnedBy(caller.ID) && !caller.IsAdmin()) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
	}

	views, err := s.projects.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get views: %w", err)
	}
	p.ViewCount = views
	return p, nil
}

// Browse returns a page of approved projects, newest first.
func (s *Service) Browse(ctx context.Context, page, size int) (*ListResult, error) {
	limit, offset, err := pageFilter(page, size)
	if err != nil {
		return nil, err
	}

	approved := domain.ProjectStatusApproved
	items, total, err := s.projects.List(ctx, domain.ProjectFilter{Status: &approved, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("project.Browse: %w", err)
	}
	return &ListResult{Items: items, Total: total, Page: page, Size: limit}, nil
}

// Mine returns the caller's projects in every moderation state.
func (s *Service) Mine(ctx context.Context, page, size int) (*ListResult, error) {
	caller, err := authz.Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	limit, offset, err := pageFilter(page, size)
	if err != nil {
		return nil, err
	}

	items, total, err := s.projects.List(ctx, domain.ProjectFilter{OwnerID: &caller.ID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("project.Mine: %w", err)
	}
	return &ListResult{Items: items, Total: total, Page: page, Size: limit}, nil
}
