package collab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Create files a new PENDING request by the caller for download access to projectID.
// Earlier requests of the same caller are left untouched.
func (s *Service) Create(ctx context.Context, projectID int64, message string) (*domain.ContributionRequest, error) {
	p, err := authz.RequireActive(ctx)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > domain.MaxContributionMessageLen {
		return nil, domain.NewValidationError("message",
			fmt.Sprintf("must be at most %d characters", domain.MaxContributionMessageLen))
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("collab.Create: %w", err)
	}
	if project.IsOwnedBy(p.ID) {
		return nil, domain.NewValidationError("projectId", "cannot request access to your own project")
	}

	cr, err := s.requests.Create(ctx, project.ID, p.ID, message)
	if err != nil {
		return nil, fmt.Errorf("collab.Create: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionContributionCreated,
		Category:    domain.AuditCategoryCollaboration,
		Description: fmt.Sprintf("Requested download access to project %q", project.Name),
	}.On(domain.EntityTypeContributionRequest, cr.ID))

	s.log.InfoContext(ctx, "contribution request created",
		slog.Int64("request_id", cr.ID),
		slog.Int64("project_id", project.ID),
		slog.Int64("requester_id", p.ID),
	)

	return cr, nil
}
