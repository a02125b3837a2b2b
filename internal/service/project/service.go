// Package project implements project publishing, browsing, likes and deletion.
package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// projectRepo defines the project repository interface needed by project service.
type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	IncrementViews(ctx context.Context, id int64) (int64, error)
	InsertLike(ctx context.Context, projectID, userID int64) (bool, error)
	DeleteLike(ctx context.Context, projectID, userID int64) (bool, error)
	AdjustLikeCount(ctx context.Context, id int64, delta int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// txManager defines the transaction manager interface needed by project service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// auditRecorder records audit events.
type auditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	tx       txManager
	audit    auditRecorder
}

// NewService creates a new project service instance.
func NewService(logger *slog.Logger, projects projectRepo, tx txManager, audit auditRecorder) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		tx:       tx,
		audit:    audit,
	}
}
