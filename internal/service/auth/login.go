package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var errBadCredentials = errors.New("invalid email or password")

// Login authenticates with email and password and issues a session token.
// Unknown email and wrong password both yield ErrUnauthorized; a suspended
// or inactive account yields ErrForbidden.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recordLogin(ctx, &domain.Principal{Email: input.Email}, errBadCredentials)
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.hasher.Compare(p.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if !ok {
		s.recordLogin(ctx, p, errBadCredentials)
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	if !p.IsActive() {
		s.recordLogin(ctx, p, fmt.Errorf("account is %s", strings.ToLower(string(p.Status))))
		return nil, fmt.Errorf("auth.Login: account %s: %w", p.Status, domain.ErrForbidden)
	}

	token, err := s.tokens.Issue(p.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	now := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, p.ID, now); err != nil {
		s.log.WarnContext(ctx, "failed to record last login",
			slog.Int64("user_id", p.ID),
			slog.String("error", err.Error()),
		)
	} else {
		p.LastLoginAt = &now
	}

	s.recordLogin(ctx, p, nil)
	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", p.ID))

	return &AuthResult{Token: token, Principal: p}, nil
}

func (s *Service) recordLogin(ctx context.Context, p *domain.Principal, failure error) {
	desc := "Logged in"
	if failure != nil {
		desc = "Login failed"
	}
	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionUserLogin,
		Category:    domain.AuditCategoryAuth,
		Description: desc,
		Actor:       p,
		Err:         failure,
	})
}
