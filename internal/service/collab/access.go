package collab

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// AccessStatus derives the caller's download access to projectID from the
// most recent request they filed.
func (s *Service) AccessStatus(ctx context.Context, projectID int64) (*domain.AccessDecision, error) {
	p, err := authz.Authenticated(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("collab.AccessStatus: %w", err)
	}
	if project.IsOwnedBy(p.ID) {
		d := domain.DecideAccess(true, nil)
		return &d, nil
	}

	latest, err := s.requests.Latest(ctx, projectID, p.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("collab.AccessStatus: %w", err)
	}

	d := domain.DecideAccess(false, latest)
	return &d, nil
}
