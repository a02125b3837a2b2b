// Package admin implements the administrator console: dashboard counters,
// student management and moderation of projects and contribution requests.
package admin

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
)

// userRepo defines the principal repository interface needed by admin service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
	List(ctx context.Context, f domain.PrincipalFilter) ([]domain.Principal, int, error)
	CountByRole(ctx context.Context, roles ...domain.Role) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Principal, error)
	Delete(ctx context.Context, id int64) error
}

// projectRepo defines the project repository interface needed by admin service.
type projectRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// requestCounter counts contribution requests per status.
type requestCounter interface {
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error)
}

// collaboration is the part of the collab workflow the console delegates to.
type collaboration interface {
	Approve(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	Reject(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	ListAll(ctx context.Context, status string, page, size int) (*collab.ListResult, error)
}

// orphanCleaner removes orphaned contribution requests.
type orphanCleaner interface {
	CleanupOrphanedRequests(ctx context.Context) (int64, error)
}

// auditRecorder records audit events.
type auditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}

// Deps groups the collaborators of the admin service.
type Deps struct {
	Users       userRepo
	Projects    projectRepo
	Requests    requestCounter
	Collab      collaboration
	Maintenance orphanCleaner
	Audit       auditRecorder
}

// Service implements admin operations. Every method requires the ADMIN role.
type Service struct {
	log         *slog.Logger
	users       userRepo
	projects    projectRepo
	requests    requestCounter
	collab      collaboration
	maintenance orphanCleaner
	audit       auditRecorder
}

// NewService creates a new admin service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:         logger.With("service", "admin"),
		users:       deps.Users,
		projects:    deps.Projects,
		requests:    deps.Requests,
		collab:      deps.Collab,
		maintenance: deps.Maintenance,
		audit:       deps.Audit,
	}
}
