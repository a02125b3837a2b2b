// Package maintenance implements periodic cleanup jobs: orphaned
// contribution requests and audit retention.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// requestCleaner removes contribution requests that lost their project or requester.
type requestCleaner interface {
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// auditPurger removes audit entries older than a threshold.
type auditPurger interface {
	PurgeOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// Report summarizes one maintenance run.
type Report struct {
	OrphanedRequests int64
	PurgedAudit      int64
}

// Service runs maintenance jobs.
type Service struct {
	log      *slog.Logger
	requests requestCleaner
	audit    auditPurger
	now      func() time.Time
}

// NewService creates a new maintenance service.
func NewService(logger *slog.Logger, requests requestCleaner, audit auditPurger) *Service {
	return &Service{
		log:      logger.With("service", "maintenance"),
		requests: requests,
		audit:    audit,
		now:      time.Now,
	}
}

// CleanupOrphanedRequests deletes requests whose project or requester no longer exists.
func (s *Service) CleanupOrphanedRequests(ctx context.Context) (int64, error) {
	n, err := s.requests.DeleteOrphaned(ctx)
	if err != nil {
		return 0, fmt.Errorf("maintenance.CleanupOrphanedRequests: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "orphaned requests removed", slog.Int64("deleted", n))
	}
	return n, nil
}

// PurgeAudit deletes audit entries older than retentionDays. Zero disables the purge.
func (s *Service) PurgeAudit(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	threshold := s.now().AddDate(0, 0, -retentionDays)
	n, err := s.audit.PurgeOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("maintenance.PurgeAudit: %w", err)
	}

	s.log.InfoContext(ctx, "audit entries purged",
		slog.Int64("deleted", n),
		slog.Time("threshold", threshold),
	)
	return n, nil
}

// RunAll runs every job. A failing job does not prevent the others from running.
func (s *Service) RunAll(ctx context.Context, retentionDays int) (Report, error) {
	var (
		rep  Report
		errs []error
		err  error
	)

	if rep.OrphanedRequests, err = s.CleanupOrphanedRequests(ctx); err != nil {
		errs = append(errs, err)
	}
	if rep.PurgedAudit, err = s.PurgeAudit(ctx, retentionDays); err != nil {
		errs = append(errs, err)
	}

	return rep, errors.Join(errs...)
}
