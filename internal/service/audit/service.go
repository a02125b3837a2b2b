// Package audit records security and workflow events and serves the admin
// activity-log queries.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// entryStore defines the audit repository interface needed by the query service.
type entryStore interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByCategorySince(ctx context.Context, since time.Time) (map[domain.AuditCategory]int64, error)
	MostActiveSince(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// eventRecorder records audit events.
type eventRecorder interface {
	Record(ctx context.Context, ev domain.AuditEvent)
	Flush(ctx context.Context) error
}

// clearFlushTimeout bounds how long ClearAll waits for queued entries.
const clearFlushTimeout = 5 * time.Second

// Service implements the activity-log queries.
type Service struct {
	log   *slog.Logger
	store entryStore
	rec   eventRecorder
	now   func() time.Time
}

// NewService creates a new audit query service.
func NewService(logger *slog.Logger, store entryStore, rec eventRecorder) *Service {
	return &Service{
		log:   logger.With("service", "audit"),
		store: store,
		rec:   rec,
		now:   time.Now,
	}
}

// List returns a page of audit entries matching input. Admin only.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.list(ctx, input)
}

// ListForUser returns the entries of one actor. Admins may read anyone's; others only their own.
func (s *Service) ListForUser(ctx context.Context, email string, page, size int) (*ListResult, error) {
	if _, err := authz.RequireSelfOrAdminByEmail(ctx, email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	return s.list(ctx, ListInput{ActorEmail: email, Page: page, Size: size})
}

func (s *Service) list(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := input.filter()
	items, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}

	return &ListResult{Items: items, Total: total, Page: input.Page, Size: f.Limit}, nil
}

// Stats aggregates activity over the trailing days (default 30). Admin only.
func (s *Service) Stats(ctx context.Context, days int) (*domain.AuditStats, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	days, err := clamp("days", days, DefaultStatsDays, MaxStatsDays)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -days)

	total, err := s.store.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats total: %w", err)
	}
	byCategory, err := s.store.CountByCategorySince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats by category: %w", err)
	}
	active, err := s.store.MostActiveSince(ctx, since, DefaultActiveLimit)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats most active: %w", err)
	}

	return &domain.AuditStats{
		Days:            days,
		Total:           total,
		ByCategory:      byCategory,
		MostActiveUsers: active,
	}, nil
}

// RecentCount returns the number of entries in the trailing hours (default 24). Admin only.
func (s *Service) RecentCount(ctx context.Context, hours int) (int64, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return 0, err
	}
	hours, err := clamp("hours", hours, DefaultRecentHours, MaxStatsDays*24)
	if err != nil {
		return 0, err
	}

	n, err := s.store.CountSince(ctx, s.now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("audit.RecentCount: %w", err)
	}
	return n, nil
}

// MostActive returns the actors with the most entries in the trailing days. Admin only.
func (s *Service) MostActive(ctx context.Context, limit, days int) ([]domain.ActorActivity, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	limit, err := clamp("limit", limit, DefaultActiveLimit, MaxPageSize)
	if err != nil {
		return nil, err
	}
	days, err = clamp("days", days, DefaultStatsDays, MaxStatsDays)
	if err != nil {
		return nil, err
	}

	active, err := s.store.MostActiveSince(ctx, s.now().AddDate(0, 0, -days), limit)
	if err != nil {
		return nil, fmt.Errorf("audit.MostActive: %w", err)
	}
	return active, nil
}

// ClearAll deletes every entry and then records the clear itself. Admin only.
// Entries still queued for writing are flushed first so they are cleared too.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	admin, err := authz.RequireAdmin(ctx)
	if err != nil {
		return 0, err
	}

	fctx, cancel := context.WithTimeout(ctx, clearFlushTimeout)
	err = s.rec.Flush(fctx)
	cancel()
	if err != nil {
		s.log.WarnContext(ctx, "audit queue not flushed before clear", slog.String("error", err.Error()))
	}

	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("audit.ClearAll: %w", err)
	}

	s.log.InfoContext(ctx, "activity logs cleared",
		slog.Int64("admin_id", admin.ID),
		slog.Int64("deleted", n),
	)
	s.rec.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionLogsCleared,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Cleared %d activity log entries", n),
	})
	return n, nil
}

// PurgeOlderThan deletes entries created before t. Used by maintenance jobs.
func (s *Service) PurgeOlderThan(ctx context.Context, t time.Time) (int64, error) {
	n, err := s.store.DeleteOlderThan(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("audit.PurgeOlderThan: %w", err)
	}
	return n, nil
}

// clamp applies def to zero values and rejects negatives or values above upper.
func clamp(field string, v, def, upper int) (int, error) {
	switch {
	case v == 0:
		return def, nil
	case v < 0 || v > upper:
		return 0, domain.NewValidationError(field, fmt.Sprintf("must be between 1 and %d", upper))
	}
	return v, nil
}
