package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/admin"
	"github.com/heartmarshall/campus-collab-backend/internal/service/audit"
	"github.com/heartmarshall/campus-collab-backend/internal/service/auth"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
	"github.com/heartmarshall/campus-collab-backend/internal/service/project"
	"github.com/heartmarshall/campus-collab-backend/internal/service/user"
)

// ---------------------------------------------------------------------------
// authService
// ---------------------------------------------------------------------------

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context, token string) error
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	return mock.LogoutFunc(ctx, token)
}

// ---------------------------------------------------------------------------
// userService
// ---------------------------------------------------------------------------

var _ userService = &userServiceMock{}

type userServiceMock struct {
	MeFunc            func(ctx context.Context) (*domain.Principal, error)
	GetProfileFunc    func(ctx context.Context, id int64) (*domain.Principal, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.Principal, error)
}

func (mock *userServiceMock) Me(ctx context.Context) (*domain.Principal, error) {
	if mock.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	return mock.MeFunc(ctx)
}

func (mock *userServiceMock) GetProfile(ctx context.Context, id int64) (*domain.Principal, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	return mock.GetProfileFunc(ctx, id)
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.Principal, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	return mock.UpdateProfileFunc(ctx, input)
}

// ---------------------------------------------------------------------------
// projectService
// ---------------------------------------------------------------------------

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	CreateFunc     func(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	GetFunc        func(ctx context.Context, id int64) (*domain.Project, error)
	BrowseFunc     func(ctx context.Context, page, size int) (*project.ListResult, error)
	MineFunc       func(ctx context.Context, page, size int) (*project.ListResult, error)
	ToggleLikeFunc func(ctx context.Context, projectID int64) (*domain.LikeResult, error)
	DeleteFunc     func(ctx context.Context, id int64) error
}

func (mock *projectServiceMock) Create(ctx context.Context, input project.CreateInput) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectServiceMock.CreateFunc: method is nil but projectService.Create was just called")
	}
	return mock.CreateFunc(ctx, input)
}

func (mock *projectServiceMock) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if mock.GetFunc == nil {
		panic("projectServiceMock.GetFunc: method is nil but projectService.Get was just called")
	}
	return mock.GetFunc(ctx, id)
}

func (mock *projectServiceMock) Browse(ctx context.Context, page, size int) (*project.ListResult, error) {
	if mock.BrowseFunc == nil {
		panic("projectServiceMock.BrowseFunc: method is nil but projectService.Browse was just called")
	}
	return mock.BrowseFunc(ctx, page, size)
}

func (mock *projectServiceMock) Mine(ctx context.Context, page, size int) (*project.ListResult, error) {
	if mock.MineFunc == nil {
		panic("projectServiceMock.MineFunc: method is nil but projectService.Mine was just called")
	}
	return mock.MineFunc(ctx, page, size)
}

func (mock *projectServiceMock) ToggleLike(ctx context.Context, projectID int64) (*domain.LikeResult, error) {
	if mock.ToggleLikeFunc == nil {
		panic("projectServiceMock.ToggleLikeFunc: method is nil but projectService.ToggleLike was just called")
	}
	return mock.ToggleLikeFunc(ctx, projectID)
}

func (mock *projectServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("projectServiceMock.DeleteFunc: method is nil but projectService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// collabService
// ---------------------------------------------------------------------------

var _ collabService = &collabServiceMock{}

type collabServiceMock struct {
	CreateFunc          func(ctx context.Context, projectID int64, message string) (*domain.ContributionRequest, error)
	ApproveFunc         func(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	RejectFunc          func(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	AccessStatusFunc    func(ctx context.Context, projectID int64) (*domain.AccessDecision, error)
	ListForProjectFunc  func(ctx context.Context, projectID int64) ([]domain.ContributionRequest, error)
	MyRequestsFunc      func(ctx context.Context) ([]domain.ContributionRequest, error)
	PendingForOwnerFunc func(ctx context.Context) ([]domain.ContributionRequest, error)

	calls struct {
		Create []struct {
			ProjectID int64
			Message   string
		}
	}
	lock sync.RWMutex
}

func (mock *collabServiceMock) Create(ctx context.Context, projectID int64, message string) (*domain.ContributionRequest, error) {
	if mock.CreateFunc == nil {
		panic("collabServiceMock.CreateFunc: method is nil but collabService.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		ProjectID int64
		Message   string
	}{projectID, message})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, projectID, message)
}

func (mock *collabServiceMock) CreateCalls() []struct {
	ProjectID int64
	Message   string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *collabServiceMock) Approve(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	if mock.ApproveFunc == nil {
		panic("collabServiceMock.ApproveFunc: method is nil but collabService.Approve was just called")
	}
	return mock.ApproveFunc(ctx, requestID)
}

func (mock *collabServiceMock) Reject(ctx context.Context, requestID int64) (*domain.ContributionRequest, error) {
	if mock.RejectFunc == nil {
		panic("collabServiceMock.RejectFunc: method is nil but collabService.Reject was just called")
	}
	return mock.RejectFunc(ctx, requestID)
}

func (mock *collabServiceMock) AccessStatus(ctx context.Context, projectID int64) (*domain.AccessDecision, error) {
	if mock.AccessStatusFunc == nil {
		panic("collabServiceMock.AccessStatusFunc: method is nil but collabService.AccessStatus was just called")
	}
	return mock.AccessStatusFunc(ctx, projectID)
}

func (mock *collabServiceMock) ListForProject(ctx context.Context, projectID int64) ([]domain.ContributionRequest, error) {
	if mock.ListForProjectFunc == nil {
		panic("collabServiceMock.ListForProjectFunc: method is nil but collabService.ListForProject was just called")
	}
	return mock.ListForProjectFunc(ctx, projectID)
}

func (mock *collabServiceMock) MyRequests(ctx context.Context) ([]domain.ContributionRequest, error) {
	if mock.MyRequestsFunc == nil {
		panic("collabServiceMock.MyRequestsFunc: method is nil but collabService.MyRequests was just called")
	}
	return mock.MyRequestsFunc(ctx)
}

func (mock *collabServiceMock) PendingForOwner(ctx context.Context) ([]domain.ContributionRequest, error) {
	if mock.PendingForOwnerFunc == nil {
		panic("collabServiceMock.PendingForOwnerFunc: method is nil but collabService.PendingForOwner was just called")
	}
	return mock.PendingForOwnerFunc(ctx)
}

// ---------------------------------------------------------------------------
// adminService
// ---------------------------------------------------------------------------

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	DashboardFunc               func(ctx context.Context) (*domain.DashboardStats, error)
	ListStudentsFunc            func(ctx context.Context, status string, page, size int) (*admin.StudentList, error)
	UpdateStudentStatusFunc     func(ctx context.Context, id int64, status string) (*domain.Principal, error)
	DeleteStudentFunc           func(ctx context.Context, id int64) error
	SetProjectStatusFunc        func(ctx context.Context, id int64, status string) (*domain.Project, error)
	DeleteProjectFunc           func(ctx context.Context, id int64) error
	ListRequestsFunc            func(ctx context.Context, status string, page, size int) (*collab.ListResult, error)
	ApproveRequestFunc          func(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	RejectRequestFunc           func(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	CleanupOrphanedRequestsFunc func(ctx context.Context) (int64, error)
}

func (mock *adminServiceMock) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if mock.DashboardFunc == nil {
		panic("adminServiceMock.DashboardFunc: method is nil but adminService.Dashboard was just called")
	}
	return mock.DashboardFunc(ctx)
}

func (mock *adminServiceMock) ListStudents(ctx context.Context, status string, page, size int) (*admin.StudentList, error) {
	if mock.ListStudentsFunc == nil {
		panic("adminServiceMock.ListStudentsFunc: method is nil but adminService.ListStudents was just called")
	}
	return mock.ListStudentsFunc(ctx, status, page, size)
}

func (mock *adminServiceMock) UpdateStudentStatus(ctx context.Context, id int64, status string) (*domain.Principal, error) {
	if mock.UpdateStudentStatusFunc == nil {
		panic("adminServiceMock.UpdateStudentStatusFunc: method is nil but adminService.UpdateStudentStatus was just called")
	}
	return mock.UpdateStudentStatusFunc(ctx, id, status)
}

func (mock *adminServiceMock) DeleteStudent(ctx context.Context, id int64) error {
	if mock.DeleteStudentFunc == nil {
		panic("adminServiceMock.DeleteStudentFunc: method is nil but adminService.DeleteStudent was just called")
	}
	return mock.DeleteStudentFunc(ctx, id)
}

func (mock *adminServiceMock) SetProjectStatus(ctx context.Context, id int64, status string) (*domain.Project, error) {
	if mock.SetProjectStatusFunc == nil {
		panic("adminServiceMock.SetProjectStatusFunc: method is nil but adminService.SetProjectStatus was just called")
	}
	return mock.SetProjectStatusFunc(ctx, id, status)
}

func (mock *adminServiceMock) DeleteProject(ctx context.Context, id int64) error {
	if mock.DeleteProjectFunc == nil {
		panic("adminServiceMock.DeleteProjectFunc: method is nil but adminService.DeleteProject was just called")
	}
	return mock.DeleteProjectFunc(ctx, id)
}

func (mock *adminServiceMock) ListRequests(ctx context.Context, status string, page, size int) (*collab.ListResult, error) {
	if mock.ListRequestsFunc == nil {
		panic("adminServiceMock.ListRequestsFunc: method is nil but adminService.ListRequests was just called")
	}
	return mock.ListRequestsFunc(ctx, status, page, size)
}

func (mock *adminServiceMock) ApproveRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	if mock.ApproveRequestFunc == nil {
		panic("adminServiceMock.ApproveRequestFunc: method is nil but adminService.ApproveRequest was just called")
	}
	return mock.ApproveRequestFunc(ctx, id)
}

func (mock *adminServiceMock) RejectRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	if mock.RejectRequestFunc == nil {
		panic("adminServiceMock.RejectRequestFunc: method is nil but adminService.RejectRequest was just called")
	}
	return mock.RejectRequestFunc(ctx, id)
}

func (mock *adminServiceMock) CleanupOrphanedRequests(ctx context.Context) (int64, error) {
	if mock.CleanupOrphanedRequestsFunc == nil {
		panic("adminServiceMock.CleanupOrphanedRequestsFunc: method is nil but adminService.CleanupOrphanedRequests was just called")
	}
	return mock.CleanupOrphanedRequestsFunc(ctx)
}

// ---------------------------------------------------------------------------
// auditService
// ---------------------------------------------------------------------------

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	ListFunc        func(ctx context.Context, input audit.ListInput) (*audit.ListResult, error)
	ListForUserFunc func(ctx context.Context, email string, page, size int) (*audit.ListResult, error)
	StatsFunc       func(ctx context.Context, days int) (*domain.AuditStats, error)
	RecentCountFunc func(ctx context.Context, hours int) (int64, error)
	MostActiveFunc  func(ctx context.Context, limit, days int) ([]domain.ActorActivity, error)
	ClearAllFunc    func(ctx context.Context) (int64, error)

	calls struct {
		List []audit.ListInput
	}
	lock sync.RWMutex
}

func (mock *auditServiceMock) List(ctx context.Context, input audit.ListInput) (*audit.ListResult, error) {
	if mock.ListFunc == nil {
		panic("auditServiceMock.ListFunc: method is nil but auditService.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, input)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *auditServiceMock) ListCalls() []audit.ListInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *auditServiceMock) ListForUser(ctx context.Context, email string, page, size int) (*audit.ListResult, error) {
	if mock.ListForUserFunc == nil {
		panic("auditServiceMock.ListForUserFunc: method is nil but auditService.ListForUser was just called")
	}
	return mock.ListForUserFunc(ctx, email, page, size)
}

func (mock *auditServiceMock) Stats(ctx context.Context, days int) (*domain.AuditStats, error) {
	if mock.StatsFunc == nil {
		panic("auditServiceMock.StatsFunc: method is nil but auditService.Stats was just called")
	}
	return mock.StatsFunc(ctx, days)
}

func (mock *auditServiceMock) RecentCount(ctx context.Context, hours int) (int64, error) {
	if mock.RecentCountFunc == nil {
		panic("auditServiceMock.RecentCountFunc: method is nil but auditService.RecentCount was just called")
	}
	return mock.RecentCountFunc(ctx, hours)
}

func (mock *auditServiceMock) MostActive(ctx context.Context, limit, days int) ([]domain.ActorActivity, error) {
	if mock.MostActiveFunc == nil {
		panic("auditServiceMock.MostActiveFunc: method is nil but auditService.MostActive was just called")
	}
	return mock.MostActiveFunc(ctx, limit, days)
}

func (mock *auditServiceMock) ClearAll(ctx context.Context) (int64, error) {
	if mock.ClearAllFunc == nil {
		panic("auditServiceMock.ClearAllFunc: method is nil but auditService.ClearAll was just called")
	}
	return mock.ClearAllFunc(ctx)
}

// ---------------------------------------------------------------------------
// dataloader repositories
// ---------------------------------------------------------------------------

// memRepos serves loader lookups from maps and counts batch calls.
type memRepos struct {
	principals map[int64]domain.Principal
	projects   map[int64]domain.Project

	mu            sync.Mutex
	principalHits int
}

func (m *memRepos) principalRepo() *memPrincipals { return &memPrincipals{m} }
func (m *memRepos) projectRepo() *memProjects     { return &memProjects{m} }

type memPrincipals struct{ m *memRepos }

func (r *memPrincipals) GetByIDs(_ context.Context, ids []int64) ([]domain.Principal, error) {
	r.m.mu.Lock()
	r.m.principalHits++
	r.m.mu.Unlock()

	var out []domain.Principal
	for _, id := range ids {
		if p, ok := r.m.principals[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type memProjects struct{ m *memRepos }

func (r *memProjects) GetByIDs(_ context.Context, ids []int64) ([]domain.Project, error) {
	var out []domain.Project
	for _, id := range ids {
		if p, ok := r.m.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
