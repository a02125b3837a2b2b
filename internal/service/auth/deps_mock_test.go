package auth

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Principal, error)
	CreateFunc         func(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	TouchLastLoginFunc func(ctx context.Context, id int64, at time.Time) error

	calls struct {
		Create         []*domain.Principal
		TouchLastLogin []struct {
			ID int64
			At time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, p)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *userRepoMock) CreateCalls() []*domain.Principal {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if mock.TouchLastLoginFunc == nil {
		panic("userRepoMock.TouchLastLoginFunc: method is nil but userRepo.TouchLastLogin was just called")
	}
	mock.lock.Lock()
	mock.calls.TouchLastLogin = append(mock.calls.TouchLastLogin, struct {
		ID int64
		At time.Time
	}{id, at})
	mock.lock.Unlock()
	return mock.TouchLastLoginFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLastLoginCalls() []struct {
	ID int64
	At time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TouchLastLogin
}

var _ tokenService = &tokenServiceMock{}

type tokenServiceMock struct {
	IssueFunc  func(principalID string) (string, error)
	VerifyFunc func(token string) (string, error)
}

func (mock *tokenServiceMock) Issue(principalID string) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenServiceMock.IssueFunc: method is nil but tokenService.Issue was just called")
	}
	return mock.IssueFunc(principalID)
}

func (mock *tokenServiceMock) Verify(token string) (string, error) {
	if mock.VerifyFunc == nil {
		panic("tokenServiceMock.VerifyFunc: method is nil but tokenService.Verify was just called")
	}
	return mock.VerifyFunc(token)
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) (bool, error)
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) Compare(hash, password string) (bool, error) {
	if mock.CompareFunc == nil {
		panic("passwordHasherMock.CompareFunc: method is nil but passwordHasher.Compare was just called")
	}
	return mock.CompareFunc(hash, password)
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
