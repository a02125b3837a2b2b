package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Principal, error)
	UpdateProfileFunc func(ctx context.Context, p *domain.Principal) (*domain.Principal, error)

	calls struct {
		GetByID       []int64
		UpdateProfile []*domain.Principal
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, p)
	mock.lock.Unlock()
	return mock.UpdateProfileFunc(ctx, p)
}

func (mock *userRepoMock) UpdateProfileCalls() []*domain.Principal {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateProfile
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
