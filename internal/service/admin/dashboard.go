package admin

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Dashboard returns the counters shown on the admin landing page.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var (
		stats domain.DashboardStats
		err   error
	)
	if stats.TotalStudents, err = s.users.CountByRole(ctx, domain.RoleStudent, domain.RoleSenior); err != nil {
		return nil, fmt.Errorf("admin.Dashboard students: %w", err)
	}
	if stats.TotalProjects, err = s.projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("admin.Dashboard projects: %w", err)
	}
	if stats.PendingRequests, err = s.requests.CountByStatus(ctx, domain.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("admin.Dashboard pending: %w", err)
	}
	if stats.ApprovedCollaborations, err = s.requests.CountByStatus(ctx, domain.RequestStatusApproved); err != nil {
		return nil, fmt.Errorf("admin.Dashboard approved: %w", err)
	}
	return &stats, nil
}
