package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Delete removes a project with its likes and contribution requests.
// Owners may delete their own projects; admins any project.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := authz.RequireActive(ctx); err != nil {
		return err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}
	caller, err := authz.RequireOwnerOrAdmin(ctx, p.OwnerID)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	category := domain.AuditCategoryProject
	if !p.IsOwnedBy(caller.ID) {
		category = domain.AuditCategoryAdmin
	}
	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionProjectDeleted,
		Category:    category,
		Description: fmt.Sprintf("Deleted project %q", p.Name),
	}.On(domain.EntityTypeProject, id))

	s.log.InfoContext(ctx, "project deleted",
		slog.Int64("project_id", id),
		slog.Int64("deleted_by", caller.ID),
	)
	return nil
}
