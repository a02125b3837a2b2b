package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Me returns the freshly loaded profile of the caller.
func (s *Service) Me(ctx context.Context) (*domain.Principal, error) {
	p, err := authz.Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, p.ID)
}

// GetProfile returns the profile of id. Principals may read their own; admins anyone's.
func (s *Service) GetProfile(ctx context.Context, id int64) (*domain.Principal, error) {
	if _, err := authz.RequireSelfOrAdmin(ctx, id); err != nil {
		return nil, err
	}

	p, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile edits the caller's own profile and re-derives the role from the semester.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Principal, error) {
	caller, err := authz.RequireActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	oldRole := current.Role

	input.apply(current)
	current.Role = domain.DeriveRole(current.Role, current.Semester)

	updated, err := s.users.UpdateProfile(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	ev := domain.AuditEvent{
		Action:      domain.AuditActionProfileUpdated,
		Category:    domain.AuditCategoryAuth,
		Description: "Updated profile",
	}.On(domain.EntityTypeUser, updated.ID)
	if oldRole != updated.Role {
		ev = ev.Change(string(oldRole), string(updated.Role))
		s.log.InfoContext(ctx, "role changed by profile update",
			slog.Int64("user_id", updated.ID),
			slog.String("from", string(oldRole)),
			slog.String("to", string(updated.Role)),
		)
	}
	s.audit.Record(ctx, ev)

	return updated, nil
}
