package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Register creates a new ACTIVE principal whose role is derived from the semester.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.Principal{
		Email:        input.Email,
		FullName:     input.FullName,
		RollNumber:   input.RollNumber,
		Course:       input.Course,
		Semester:     input.Semester,
		Role:         domain.DeriveRole(domain.RoleStudent, input.Semester),
		Status:       domain.AccountStatusActive,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: email %s: %w", input.Email, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.tokens.Issue(created.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionUserRegistration,
		Category:    domain.AuditCategoryAuth,
		Description: fmt.Sprintf("Registered as %s", created.Role),
		Actor:       created,
	}.On(domain.EntityTypeUser, created.ID))

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("role", string(created.Role)),
	)

	return &AuthResult{Token: token, Principal: created}, nil
}
