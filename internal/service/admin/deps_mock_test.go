package admin

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Principal, error)
	ListFunc         func(ctx context.Context, f domain.PrincipalFilter) ([]domain.Principal, int, error)
	CountByRoleFunc  func(ctx context.Context, roles ...domain.Role) (int64, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Principal, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		List        []domain.PrincipalFilter
		CountByRole [][]domain.Role
		Delete      []int64
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) List(ctx context.Context, f domain.PrincipalFilter) ([]domain.Principal, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, f)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *userRepoMock) ListCalls() []domain.PrincipalFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *userRepoMock) CountByRole(ctx context.Context, roles ...domain.Role) (int64, error) {
	if mock.CountByRoleFunc == nil {
		panic("userRepoMock.CountByRoleFunc: method is nil but userRepo.CountByRole was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByRole = append(mock.calls.CountByRole, roles)
	mock.lock.Unlock()
	return mock.CountByRoleFunc(ctx, roles...)
}

func (mock *userRepoMock) CountByRoleCalls() [][]domain.Role {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByRole
}

func (mock *userRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Principal, error) {
	if mock.UpdateStatusFunc == nil {
		panic("userRepoMock.UpdateStatusFunc: method is nil but userRepo.UpdateStatus was just called")
	}
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Project, error)
	CountFunc        func(ctx context.Context) (int64, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error)
	DeleteFunc       func(ctx context.Context, id int64) error
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("projectRepoMock.CountFunc: method is nil but projectRepo.Count was just called")
	}
	return mock.CountFunc(ctx)
}

func (mock *projectRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error) {
	if mock.UpdateStatusFunc == nil {
		panic("projectRepoMock.UpdateStatusFunc: method is nil but projectRepo.UpdateStatus was just called")
	}
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *projectRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

var _ requestCounter = &requestCounterMock{}

type requestCounterMock struct {
	CountByStatusFunc func(ctx context.Context, status domain.RequestStatus) (int64, error)
}

func (mock *requestCounterMock) CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error) {
	if mock.CountByStatusFunc == nil {
		panic("requestCounterMock.CountByStatusFunc: method is nil but requestCounter.CountByStatus was just called")
	}
	return mock.CountByStatusFunc(ctx, status)
}

var _ collaboration = &collaborationMock{}

type collaborationMock struct {
	ApproveFunc func(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	RejectFunc  func(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	ListAllFunc func(ctx context.Context, status string, page, size int) (*collab.ListResult, error)
}

func (mock *collaborationMock) Approve(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	if mock.ApproveFunc == nil {
		panic("collaborationMock.ApproveFunc: method is nil but collaboration.Approve was just called")
	}
	return mock.ApproveFunc(ctx, requestID)
}

func (mock *collaborationMock) Reject(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	if mock.RejectFunc == nil {
		panic("collaborationMock.RejectFunc: method is nil but collaboration.Reject was just called")
	}
	return mock.RejectFunc(ctx, requestID)
}

func (mock *collaborationMock) ListAll(ctx context.Context, status string, page, size int) (*collab.ListResult, error) {
	if mock.ListAllFunc == nil {
		panic("collaborationMock.ListAllFunc: method is nil but collaboration.ListAll was just called")
	}
	return mock.ListAllFunc(ctx, status, page, size)
}

var _ orphanCleaner = &orphanCleanerMock{}

type orphanCleanerMock struct {
	CleanupOrphanedRequestsFunc func(ctx context.Context) (int64, error)
}

func (mock *orphanCleanerMock) CleanupOrphanedRequests(ctx context.Context) (int64, error) {
	if mock.CleanupOrphanedRequestsFunc == nil {
		panic("orphanCleanerMock.CleanupOrphanedRequestsFunc: method is nil but orphanCleaner.CleanupOrphanedRequests was just called")
	}
	return mock.CleanupOrphanedRequestsFunc(ctx)
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
