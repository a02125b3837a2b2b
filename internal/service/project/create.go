package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Create publishes a project owned by the caller. New projects await moderation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	owner, err := authz.RequireActive(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projects.Create(ctx, &domain.Project{
		OwnerID:     owner.ID,
		Name:        input.Name,
		Description: input.Description,
		TechStack:   input.TechStack,
		RepoURL:     input.RepoURL,
		Status:      domain.ProjectStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionProjectCreated,
		Category:    domain.AuditCategoryProject,
		Description: fmt.Sprintf("Created project %q", p.Name),
	}.On(domain.EntityTypeProject, p.ID))

	s.log.InfoContext(ctx, "project created",
		slog.Int64("project_id", p.ID),
		slog.Int64("owner_id", owner.ID),
	)
	return p, nil
}
