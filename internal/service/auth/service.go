// Package auth implements registration, password login and logout.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Principal, error)
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// tokenService issues and verifies session tokens.
type tokenService interface {
	Issue(principalID string) (string, error)
	Verify(token string) (string, error)
}

// passwordHasher hashes and compares passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// auditRecorder records audit events.
type auditRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenService
	hasher passwordHasher
	audit  auditRecorder
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenService,
	hasher passwordHasher,
	audit auditRecorder,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
		audit:  audit,
		now:    time.Now,
	}
}
