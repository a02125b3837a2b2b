package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs RunAll on a cron schedule until its context is cancelled.
type Scheduler struct {
	log           *slog.Logger
	svc           *Service
	spec          string
	retentionDays int
}

// NewScheduler creates a scheduler. An empty spec yields a scheduler whose Run
// only waits for cancellation.
func NewScheduler(logger *slog.Logger, svc *Service, spec string, retentionDays int) *Scheduler {
	return &Scheduler{
		log:           logger.With("component", "maintenance_scheduler"),
		svc:           svc,
		spec:          spec,
		retentionDays: retentionDays,
	}
}

// Run blocks until ctx is done. Jobs in flight finish before it returns.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.spec == "" {
		s.log.InfoContext(ctx, "maintenance schedule disabled")
		<-ctx.Done()
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(s.spec, func() {
		// Jobs outlive the cancellation that stops the scheduler.
		jobCtx := context.WithoutCancel(ctx)
		rep, err := s.svc.RunAll(jobCtx, s.retentionDays)
		if err != nil {
			s.log.ErrorContext(jobCtx, "maintenance run failed", slog.String("error", err.Error()))
			return
		}
		s.log.InfoContext(jobCtx, "maintenance run completed",
			slog.Int64("orphaned_requests", rep.OrphanedRequests),
			slog.Int64("purged_audit", rep.PurgedAudit),
		)
	})
	if err != nil {
		return fmt.Errorf("maintenance schedule %q: %w", s.spec, err)
	}

	c.Start()
	s.log.InfoContext(ctx, "maintenance scheduler started", slog.String("schedule", s.spec))

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("maintenance scheduler stopped")
	return nil
}
