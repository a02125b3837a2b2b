// Package collab implements the contribution request workflow: requesting
// download access to a project and the owner's approve or reject decision.
package collab

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// requestRepo defines the contribution request repository interface needed by collab service.
type requestRepo interface {
	Create(ctx context.Context, projectID, requesterID int64, message string) (*domain.ContributionRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	Latest(ctx context.Context, projectID, requesterID int64) (*domain.ContributionRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.ContributionRequest, int, error)
	Transition(ctx context.Context, id int64, target domain.RequestStatus, decidedBy int64, at time.Time) (*domain.ContributionRequest, error)
}

// projectRepo defines the project lookups needed by collab service.
type projectRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

// principalRepo defines the principal lookups needed by collab service.
type principalRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
}

// auditRecorder records audit events.
type auditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}

// Service implements the collaboration workflow.
type Service struct {
	log      *slog.Logger
	requests requestRepo
	projects projectRepo
	users    principalRepo
	audit    auditRecorder
	now      func() time.Time
}

// NewService creates a new collab service instance.
func NewService(
	logger *slog.Logger,
	requests requestRepo,
	projects projectRepo,
	users principalRepo,
	audit auditRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "collab"),
		requests: requests,
		projects: projects,
		users:    users,
		audit:    audit,
		now:      time.Now,
	}
}
