package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func newTestService(store entryStore, rec eventRecorder) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(logger, store, rec)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func asAdmin() context.Context {
	return ctxutil.WithPrincipal(context.Background(), &domain.Principal{
		ID: 1, Email: "admin@campus.edu", Role: domain.RoleAdmin, Status: domain.AccountStatusActive,
	})
}

func asStudent(email string) context.Context {
	return ctxutil.WithPrincipal(context.Background(), &domain.Principal{
		ID: 2, Email: email, Role: domain.RoleStudent, Status: domain.AccountStatusActive,
	})
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestService_List_AdminOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(&entryStoreMock{}, nil)

	_, err := svc.List(context.Background(), ListInput{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.List(asStudent("s@campus.edu"), ListInput{})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_List_DefaultsAndPaging(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		ListFunc: func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
			return []domain.AuditEntry{{Action: domain.AuditActionUserLogin}}, 45, nil
		},
	}
	svc := newTestService(store, nil)

	res, err := svc.List(asAdmin(), ListInput{Category: "AUTH", Search: "login", Page: 2})
	require.NoError(t, err)

	require.Len(t, store.ListCalls(), 1)
	f := store.ListCalls()[0].F
	assert.Equal(t, DefaultPageSize, f.Limit)
	assert.Equal(t, 2*DefaultPageSize, f.Offset)
	require.NotNil(t, f.Category)
	assert.Equal(t, domain.AuditCategoryAuth, *f.Category)
	assert.Equal(t, "login", f.Search)

	assert.Equal(t, 45, res.Total)
	assert.Equal(t, 3, res.TotalPages())
}

func TestService_List_Validation(t *testing.T) {
	t.Parallel()

	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	tests := []struct {
		name  string
		input ListInput
	}{
		{"unknown category", ListInput{Category: "NOPE"}},
		{"inverted range", ListInput{From: &from, To: &to}},
		{"negative page", ListInput{Page: -1}},
		{"size too large", ListInput{Size: MaxPageSize + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(&entryStoreMock{}, nil)
			_, err := svc.List(asAdmin(), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestService_ListForUser_SelfOrAdmin(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		ListFunc: func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
			return nil, 0, nil
		},
	}
	svc := newTestService(store, nil)

	_, err := svc.ListForUser(asStudent("me@campus.edu"), "ME@campus.edu", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "ME@campus.edu", store.ListCalls()[0].F.ActorEmail)

	_, err = svc.ListForUser(asStudent("me@campus.edu"), "other@campus.edu", 0, 0)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.ListForUser(asAdmin(), "other@campus.edu", 0, 0)
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

func TestService_Stats_DefaultWindow(t *testing.T) {
	t.Parallel()

	wantSince := fixedNow.AddDate(0, 0, -DefaultStatsDays)
	store := &entryStoreMock{
		CountSinceFunc: func(ctx context.Context, since time.Time) (int64, error) {
			assert.Equal(t, wantSince, since)
			return 12, nil
		},
		CountByCategorySinceFunc: func(ctx context.Context, since time.Time) (map[domain.AuditCategory]int64, error) {
			return map[domain.AuditCategory]int64{domain.AuditCategoryAuth: 12}, nil
		},
		MostActiveSinceFunc: func(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error) {
			return []domain.ActorActivity{{Email: "a@campus.edu", Count: 12}}, nil
		},
	}
	svc := newTestService(store, nil)

	stats, err := svc.Stats(asAdmin(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStatsDays, stats.Days)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, int64(12), stats.ByCategory[domain.AuditCategoryAuth])
	require.Len(t, stats.MostActiveUsers, 1)
	assert.Equal(t, DefaultActiveLimit, store.MostActiveSinceCalls()[0].Limit)
}

func TestService_Stats_RejectsNegativeDays(t *testing.T) {
	t.Parallel()

	svc := newTestService(&entryStoreMock{}, nil)
	_, err := svc.Stats(asAdmin(), -1)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_RecentCount(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		CountSinceFunc: func(ctx context.Context, since time.Time) (int64, error) {
			assert.Equal(t, fixedNow.Add(-24*time.Hour), since)
			return 4, nil
		},
	}
	svc := newTestService(store, nil)

	n, err := svc.RecentCount(asAdmin(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestService_MostActive_CustomLimit(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		MostActiveSinceFunc: func(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error) {
			assert.Equal(t, fixedNow.AddDate(0, 0, -7), since)
			return nil, nil
		},
	}
	svc := newTestService(store, nil)

	_, err := svc.MostActive(asAdmin(), 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, store.MostActiveSinceCalls()[0].Limit)
}

// ---------------------------------------------------------------------------
// ClearAll / Purge
// ---------------------------------------------------------------------------

func TestService_ClearAll_RecordsAfterDelete(t *testing.T) {
	t.Parallel()

	rec := &eventRecorderMock{}
	store := &entryStoreMock{
		DeleteAllFunc: func(ctx context.Context) (int64, error) {
			assert.Empty(t, rec.Events(), "clear must be recorded after the delete")
			return 17, nil
		},
	}
	svc := newTestService(store, rec)

	n, err := svc.ClearAll(asAdmin())
	require.NoError(t, err)
	assert.Equal(t, int64(17), n)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.AuditActionLogsCleared, events[0].Action)
	assert.Equal(t, domain.AuditCategoryAdmin, events[0].Category)
	assert.Contains(t, events[0].Description, "17")
}

func TestService_ClearAll_FlushesQueueBeforeDelete(t *testing.T) {
	t.Parallel()

	rec := &eventRecorderMock{}
	store := &entryStoreMock{
		DeleteAllFunc: func(ctx context.Context) (int64, error) {
			assert.Equal(t, 1, rec.Flushes(), "queued entries must be written before the delete")
			return 3, nil
		},
	}
	svc := newTestService(store, rec)

	_, err := svc.ClearAll(asAdmin())
	require.NoError(t, err)
	assert.Len(t, store.DeleteAllCalls(), 1)
}

func TestService_ClearAll_FlushTimeoutStillClears(t *testing.T) {
	t.Parallel()

	rec := &eventRecorderMock{
		FlushFunc: func(ctx context.Context) error { return context.DeadlineExceeded },
	}
	store := &entryStoreMock{
		DeleteAllFunc: func(ctx context.Context) (int64, error) { return 2, nil },
	}
	svc := newTestService(store, rec)

	n, err := svc.ClearAll(asAdmin())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.Len(t, rec.Events(), 1)
}

func TestService_ClearAll_Forbidden(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{}
	svc := newTestService(store, &eventRecorderMock{})

	_, err := svc.ClearAll(asStudent("s@campus.edu"))
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, store.DeleteAllCalls())
}

func TestService_PurgeOlderThan_WrapsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	store := &entryStoreMock{
		DeleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, boom
		},
	}
	svc := newTestService(store, nil)

	_, err := svc.PurgeOlderThan(context.Background(), fixedNow)
	require.ErrorIs(t, err, boom)
}
