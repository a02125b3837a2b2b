package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc          func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Project, error)
	ListFunc            func(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	IncrementViewsFunc  func(ctx context.Context, id int64) (int64, error)
	InsertLikeFunc      func(ctx context.Context, projectID, userID int64) (bool, error)
	DeleteLikeFunc      func(ctx context.Context, projectID, userID int64) (bool, error)
	AdjustLikeCountFunc func(ctx context.Context, id int64, delta int64) (int64, error)
	DeleteFunc          func(ctx context.Context, id int64) error

	calls struct {
		Create          []*domain.Project
		List            []domain.ProjectFilter
		IncrementViews  []int64
		AdjustLikeCount []int64
		Delete          []int64
	}
	lock sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, p)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []*domain.Project {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, f)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *projectRepoMock) ListCalls() []domain.ProjectFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *projectRepoMock) IncrementViews(ctx context.Context, id int64) (int64, error) {
	if mock.IncrementViewsFunc == nil {
		panic("projectRepoMock.IncrementViewsFunc: method is nil but projectRepo.IncrementViews was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, id)
	mock.lock.Unlock()
	return mock.IncrementViewsFunc(ctx, id)
}

func (mock *projectRepoMock) IncrementViewsCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementViews
}

func (mock *projectRepoMock) InsertLike(ctx context.Context, projectID, userID int64) (bool, error) {
	if mock.InsertLikeFunc == nil {
		panic("projectRepoMock.InsertLikeFunc: method is nil but projectRepo.InsertLike was just called")
	}
	return mock.InsertLikeFunc(ctx, projectID, userID)
}

func (mock *projectRepoMock) DeleteLike(ctx context.Context, projectID, userID int64) (bool, error) {
	if mock.DeleteLikeFunc == nil {
		panic("projectRepoMock.DeleteLikeFunc: method is nil but projectRepo.DeleteLike was just called")
	}
	return mock.DeleteLikeFunc(ctx, projectID, userID)
}

func (mock *projectRepoMock) AdjustLikeCount(ctx context.Context, id int64, delta int64) (int64, error) {
	if mock.AdjustLikeCountFunc == nil {
		panic("projectRepoMock.AdjustLikeCountFunc: method is nil but projectRepo.AdjustLikeCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustLikeCount = append(mock.calls.AdjustLikeCount, delta)
	mock.lock.Unlock()
	return mock.AdjustLikeCountFunc(ctx, id, delta)
}

func (mock *projectRepoMock) AdjustLikeCountCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustLikeCount
}

func (mock *projectRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	runs int
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.runs++
	return fn(ctx)
}

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (mock *auditRecorderMock) Record(_ context.Context, ev domain.AuditEvent) {
	mock.mu.Lock()
	mock.events = append(mock.events, ev)
	mock.mu.Unlock()
}

func (mock *auditRecorderMock) Events() []domain.AuditEvent {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return append([]domain.AuditEvent(nil), mock.events...)
}
