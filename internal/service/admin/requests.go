package admin

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
)

// ListRequests returns a page of all contribution requests.
func (s *Service) ListRequests(ctx context.Context, status string, page, size int) (*collab.ListResult, error) {
	return s.collab.ListAll(ctx, status, page, size)
}

// ApproveRequest approves any pending request.
func (s *Service) ApproveRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.collab.Approve(ctx, id)
}

// RejectRequest rejects any pending request.
func (s *Service) RejectRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.collab.Reject(ctx, id)
}

// CleanupOrphanedRequests runs the orphan sweep on demand and returns the deleted count.
func (s *Service) CleanupOrphanedRequests(ctx context.Context) (int64, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return 0, err
	}

	n, err := s.maintenance.CleanupOrphanedRequests(ctx)
	if err != nil {
		return 0, fmt.Errorf("admin.CleanupOrphanedRequests: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionOrphansCleaned,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Removed %d orphaned contribution requests", n),
	})
	return n, nil
}
