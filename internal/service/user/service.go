// Package user implements principal profile operations.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
	UpdateProfile(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
}

// auditRecorder records audit events.
type auditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditRecorder
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, audit auditRecorder) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
	}
}
