package audit

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	ListFunc                 func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error)
	CountSinceFunc           func(ctx context.Context, since time.Time) (int64, error)
	CountByCategorySinceFunc func(ctx context.Context, since time.Time) (map[domain.AuditCategory]int64, error)
	MostActiveSinceFunc      func(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error)
	DeleteAllFunc            func(ctx context.Context) (int64, error)
	DeleteOlderThanFunc      func(ctx context.Context, t time.Time) (int64, error)

	calls struct {
		List []struct {
			F domain.AuditFilter
		}
		MostActiveSince []struct {
			Since time.Time
			Limit int
		}
		DeleteAll       []struct{}
		DeleteOlderThan []struct {
			T time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *entryStoreMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	if mock.ListFunc == nil {
		panic("entryStoreMock.ListFunc: method is nil but entryStore.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ F domain.AuditFilter }{F: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *entryStoreMock) ListCalls() []struct{ F domain.AuditFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *entryStoreMock) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if mock.CountSinceFunc == nil {
		panic("entryStoreMock.CountSinceFunc: method is nil but entryStore.CountSince was just called")
	}
	return mock.CountSinceFunc(ctx, since)
}

func (mock *entryStoreMock) CountByCategorySince(ctx context.Context, since time.Time) (map[domain.AuditCategory]int64, error) {
	if mock.CountByCategorySinceFunc == nil {
		panic("entryStoreMock.CountByCategorySinceFunc: method is nil but entryStore.CountByCategorySince was just called")
	}
	return mock.CountByCategorySinceFunc(ctx, since)
}

func (mock *entryStoreMock) MostActiveSince(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error) {
	if mock.MostActiveSinceFunc == nil {
		panic("entryStoreMock.MostActiveSinceFunc: method is nil but entryStore.MostActiveSince was just called")
	}
	mock.lock.Lock()
	mock.calls.MostActiveSince = append(mock.calls.MostActiveSince, struct {
		Since time.Time
		Limit int
	}{Since: since, Limit: limit})
	mock.lock.Unlock()
	return mock.MostActiveSinceFunc(ctx, since, limit)
}

func (mock *entryStoreMock) MostActiveSinceCalls() []struct {
	Since time.Time
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MostActiveSince
}

func (mock *entryStoreMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("entryStoreMock.DeleteAllFunc: method is nil but entryStore.DeleteAll was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, struct{}{})
	mock.lock.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *entryStoreMock) DeleteAllCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteAll
}

func (mock *entryStoreMock) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	if mock.DeleteOlderThanFunc == nil {
		panic("entryStoreMock.DeleteOlderThanFunc: method is nil but entryStore.DeleteOlderThan was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteOlderThan = append(mock.calls.DeleteOlderThan, struct{ T time.Time }{T: t})
	mock.lock.Unlock()
	return mock.DeleteOlderThanFunc(ctx, t)
}

var _ eventRecorder = &eventRecorderMock{}

type eventRecorderMock struct {
	FlushFunc func(ctx context.Context) error

	mu      sync.Mutex
	events  []domain.AuditEvent
	flushes int
}

func (mock *eventRecorderMock) Flush(ctx context.Context) error {
	mock.mu.Lock()
	mock.flushes++
	mock.mu.Unlock()
	if mock.FlushFunc == nil {
		return nil
	}
	return mock.FlushFunc(ctx)
}

func (mock *eventRecorderMock) Flushes() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.flushes
}

func (mock *eventRecorderMock) Record(_ context.Context, ev domain.AuditEvent) {
	mock.mu.Lock()
	mock.events = append(mock.events, ev)
	mock.mu.Unlock()
}

func (mock *eventRecorderMock) Events() []domain.AuditEvent {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return append([]domain.AuditEvent(nil), mock.events...)
}

var _ entryWriter = &entryWriterMock{}

type entryWriterMock struct {
	InsertFunc func(ctx context.Context, e domain.AuditEntry) error

	mu    sync.Mutex
	calls []domain.AuditEntry
}

func (mock *entryWriterMock) Insert(ctx context.Context, e domain.AuditEntry) error {
	if mock.InsertFunc == nil {
		panic("entryWriterMock.InsertFunc: method is nil but entryWriter.Insert was just called")
	}
	mock.mu.Lock()
	mock.calls = append(mock.calls, e)
	mock.mu.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *entryWriterMock) InsertCalls() []domain.AuditEntry {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return append([]domain.AuditEntry(nil), mock.calls...)
}
