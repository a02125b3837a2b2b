package collab

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	CreateFunc     func(ctx context.Context, projectID, requesterID int64, message string) (*domain.ContributionRequest, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	LatestFunc     func(ctx context.Context, projectID, requesterID int64) (*domain.ContributionRequest, error)
	ListFunc       func(ctx context.Context, f domain.RequestFilter) ([]domain.ContributionRequest, int, error)
	TransitionFunc func(ctx context.Context, id int64, target domain.RequestStatus, decidedBy int64, at time.Time) (*domain.ContributionRequest, error)

	calls struct {
		Create []struct {
			ProjectID   int64
			RequesterID int64
			Message     string
		}
		List       []domain.RequestFilter
		Transition []struct {
			ID        int64
			Target    domain.RequestStatus
			DecidedBy int64
		}
	}
	lock sync.RWMutex
}

func (mock *requestRepoMock) Create(ctx context.Context, projectID, requesterID int64, message string) (*domain.ContributionRequest, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		ProjectID   int64
		RequesterID int64
		Message     string
	}{projectID, requesterID, message})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, projectID, requesterID, message)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	ProjectID   int64
	RequesterID int64
	Message     string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *requestRepoMock) Latest(ctx context.Context, projectID, requesterID int64) (*domain.ContributionRequest, error) {
	if mock.LatestFunc == nil {
		panic("requestRepoMock.LatestFunc: method is nil but requestRepo.Latest was just called")
	}
	return mock.LatestFunc(ctx, projectID, requesterID)
}

func (mock *requestRepoMock) List(ctx context.Context, f domain.RequestFilter) ([]domain.ContributionRequest, int, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, f)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *requestRepoMock) ListCalls() []domain.RequestFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *requestRepoMock) Transition(ctx context.Context, id int64, target domain.RequestStatus, decidedBy int64, at time.Time) (*domain.ContributionRequest, error) {
	if mock.TransitionFunc == nil {
		panic("requestRepoMock.TransitionFunc: method is nil but requestRepo.Transition was just called")
	}
	mock.lock.Lock()
	mock.calls.Transition = append(mock.calls.Transition, struct {
		ID        int64
		Target    domain.RequestStatus
		DecidedBy int64
	}{id, target, decidedBy})
	mock.lock.Unlock()
	return mock.TransitionFunc(ctx, id, target, decidedBy, at)
}

func (mock *requestRepoMock) TransitionCalls() []struct {
	ID        int64
	Target    domain.RequestStatus
	DecidedBy int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Transition
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Project, error)
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ principalRepo = &principalRepoMock{}

type principalRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Principal, error)
}

func (mock *principalRepoMock) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	if mock.GetByIDFunc == nil {
		panic("principalRepoMock.GetByIDFunc: method is nil but principalRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
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
