package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// SetProjectStatus moderates a project to APPROVED or REJECTED.
func (s *Service) SetProjectStatus(ctx context.Context, id int64, status string) (*domain.Project, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	target := domain.ProjectStatus(status)
	var action domain.AuditAction
	switch target {
	case domain.ProjectStatusApproved:
		action = domain.AuditActionProjectApproved
	case domain.ProjectStatusRejected:
		action = domain.AuditActionProjectRejected
	default:
		return nil, domain.NewValidationError("status", "must be APPROVED or REJECTED")
	}

	current, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("admin.SetProjectStatus: %w", err)
	}

	updated, err := s.projects.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("admin.SetProjectStatus: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      action,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Set project %q to %s", updated.Name, target),
	}.On(domain.EntityTypeProject, id).Change(string(current.Status), string(target)))

	return updated, nil
}

// DeleteProject removes any project with its likes and requests.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("admin.DeleteProject: %w", err)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("admin.DeleteProject: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionProjectDeleted,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Deleted project %q", p.Name),
	}.On(domain.EntityTypeProject, id))

	s.log.InfoContext(ctx, "project deleted by admin", slog.Int64("project_id", id))
	return nil
}
