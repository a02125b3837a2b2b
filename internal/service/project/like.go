package project

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// ToggleLike likes the project for the caller, or removes an existing like.
// The like row and the counter change in one transaction.
func (s *Service) ToggleLike(ctx context.Context, projectID int64) (*domain.LikeResult, error) {
	caller, err := authz.RequireActive(ctx)
	if err != nil {
		return nil, err
	}

	var (
		res     domain.LikeResult
		project *domain.Project
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetByID(txCtx, projectID)
		if err != nil {
			return err
		}
		project = p

		removed, err := s.projects.DeleteLike(txCtx, projectID, caller.ID)
		if err != nil {
			return err
		}
		if removed {
			n, err := s.projects.AdjustLikeCount(txCtx, projectID, -1)
			if err != nil {
				return err
			}
			res = domain.LikeResult{Liked: false, LikeCount: n}
			return nil
		}

		added, err := s.projects.InsertLike(txCtx, projectID, caller.ID)
		if err != nil {
			return err
		}
		delta := int64(0)
		if added {
			delta = 1
		}
		n, err := s.projects.AdjustLikeCount(txCtx, projectID, delta)
		if err != nil {
			return err
		}
		res = domain.LikeResult{Liked: true, LikeCount: n}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.ToggleLike: %w", err)
	}

	action, verb := domain.AuditActionProjectLiked, "Liked"
	if !res.Liked {
		action, verb = domain.AuditActionProjectUnliked, "Unliked"
	}
	s.audit.Record(ctx, domain.AuditEvent{
		Action:      action,
		Category:    domain.AuditCategoryProject,
		Description: fmt.Sprintf("%s project %q", verb, project.Name),
	}.On(domain.EntityTypeProject, projectID))

	return &res, nil
}
