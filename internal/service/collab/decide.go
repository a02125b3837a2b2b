package collab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Approve grants the requester download access.
func (s *Service) Approve(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	return s.decide(ctx, requestID, domain.RequestStatusApproved)
}

// Reject denies the request.
func (s *Service) Reject(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	return s.decide(ctx, requestID, domain.RequestStatusRejected)
}

// decide moves a PENDING request into target. Only the project owner or an
// admin may decide; anyone else sees ErrNotFound. Deciding a request that is
// already in target succeeds again; deciding one in the other terminal state
// fails with ErrConflict.
func (s *Service) decide(ctx context.Context, requestID int64, target domain.RequestStatus) (*domain.ContributionRequest, error) {
	p, err := authz.RequireActive(ctx)
	if err != nil {
		return nil, err
	}

	cr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("collab.decide: %w", err)
	}
	project, err := s.projects.GetByID(ctx, cr.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("collab.decide project: %w", err)
	}

	isOwner := project.IsOwnedBy(p.ID)
	if !isOwner && !p.IsAdmin() {
		return nil, fmt.Errorf("contribution request %d: %w", requestID, domain.ErrNotFound)
	}

	oldStatus := cr.Status
	switch {
	case cr.Status == target:
		// idempotent repeat
	case !cr.CanTransitionTo(target):
		return nil, fmt.Errorf("contribution request %d is %s: %w", requestID, cr.Status, domain.ErrConflict)
	default:
		updated, err := s.requests.Transition(ctx, requestID, target, p.ID, s.now().UTC())
		switch {
		case err == nil:
			cr = updated
		case errors.Is(err, domain.ErrConflict):
			// lost a race; the winner may have chosen the same outcome
			current, getErr := s.requests.GetByID(ctx, requestID)
			if getErr != nil {
				return nil, fmt.Errorf("collab.decide reload: %w", getErr)
			}
			if current.Status != target {
				return nil, fmt.Errorf("collab.decide: %w", err)
			}
			cr = current
			oldStatus = current.Status
		default:
			return nil, fmt.Errorf("collab.decide: %w", err)
		}
	}

	s.recordDecision(ctx, cr, project, isOwner, oldStatus, target)

	s.log.InfoContext(ctx, "contribution request decided",
		slog.Int64("request_id", cr.ID),
		slog.String("status", string(target)),
		slog.Int64("decided_by", p.ID),
		slog.Bool("admin", !isOwner),
	)

	return cr, nil
}

func (s *Service) recordDecision(
	ctx context.Context,
	cr *domain.ContributionRequest,
	project *domain.Project,
	isOwner bool,
	oldStatus, target domain.RequestStatus,
) {
	requester := fmt.Sprintf("user #%d", cr.RequesterID)
	if u, err := s.users.GetByID(ctx, cr.RequesterID); err == nil {
		requester = u.FullName
	} else {
		s.log.DebugContext(ctx, "requester lookup for audit failed",
			slog.Int64("requester_id", cr.RequesterID),
			slog.String("error", err.Error()),
		)
	}

	ev := domain.AuditEvent{
		Category: domain.AuditCategoryCollaboration,
	}
	verb := "Approved"
	if target == domain.RequestStatusRejected {
		verb = "Rejected"
	}

	switch {
	case isOwner && target == domain.RequestStatusApproved:
		ev.Action = domain.AuditActionCollaborationApproved
	case isOwner:
		ev.Action = domain.AuditActionCollaborationRejected
	case target == domain.RequestStatusApproved:
		ev.Action = domain.AuditActionRequestApproved
		ev.Category = domain.AuditCategoryAdmin
	default:
		ev.Action = domain.AuditActionRequestRejected
		ev.Category = domain.AuditCategoryAdmin
	}
	ev.Description = fmt.Sprintf("%s download request of %s for project %q", verb, requester, project.Name)

	s.audit.Record(ctx, ev.
		On(domain.EntityTypeContributionRequest, cr.ID).
		Change(string(oldStatus), string(target)))
}
