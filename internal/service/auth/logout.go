package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Logout records the logout of the token's principal. Tokens are stateless,
// so the client discards it; an invalid, expired or missing token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	email, err := s.tokens.Verify(token)
	if err != nil {
		s.log.DebugContext(ctx, "logout with unusable token", slog.String("error", err.Error()))
		return nil
	}

	p, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "logout for unknown principal", slog.String("email", email))
		return nil
	}
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionUserLogout,
		Category:    domain.AuditCategoryAuth,
		Description: "Logged out",
		Actor:       p,
	})
	return nil
}
