package rest

import "net/http"

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	User    *UserHandler
	Project *ProjectHandler
	Collab  *CollabHandler
	Admin   *AdminHandler
	Audit   *AuditHandler
}

// NewRouter registers all routes on a new ServeMux. metrics may be nil.
func NewRouter(h Handlers, metrics http.Handler, metricsPath string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if metrics != nil {
		mux.Handle("GET "+metricsPath, metrics)
	}

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/users/me", h.User.Me)
	mux.HandleFunc("PUT /api/users/me", h.User.UpdateMe)
	mux.HandleFunc("GET /api/users/{id}", h.User.Get)

	mux.HandleFunc("POST /api/projects", h.Project.Create)
	mux.HandleFunc("GET /api/projects", h.Project.Browse)
	mux.HandleFunc("GET /api/projects/my", h.Project.Mine)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.Get)
	mux.HandleFunc("POST /api/projects/{id}/like", h.Project.Like)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Project.Delete)

	mux.HandleFunc("POST /api/contributions/{projectId}", h.Collab.Create)
	mux.HandleFunc("GET /api/contributions/project/{projectId}", h.Collab.ForProject)
	mux.HandleFunc("GET /api/contributions/my-requests", h.Collab.Mine)
	mux.HandleFunc("GET /api/contributions/pending", h.Collab.Pending)
	mux.HandleFunc("GET /api/contributions/access/{projectId}", h.Collab.Access)
	mux.HandleFunc("PUT /api/contributions/{requestId}/approve", h.Collab.Approve)
	mux.HandleFunc("PUT /api/contributions/{requestId}/reject", h.Collab.Reject)

	mux.HandleFunc("GET /api/admin/stats", h.Admin.Stats)
	mux.HandleFunc("GET /api/admin/students", h.Admin.Students)
	mux.HandleFunc("PUT /api/admin/students/{id}", h.Admin.UpdateStudent)
	mux.HandleFunc("DELETE /api/admin/students/{id}", h.Admin.DeleteStudent)
	mux.HandleFunc("PUT /api/admin/projects/{id}/approve", h.Admin.ApproveProject)
	mux.HandleFunc("PUT /api/admin/projects/{id}/reject", h.Admin.RejectProject)
	mux.HandleFunc("DELETE /api/admin/projects/{id}", h.Admin.DeleteProject)
	mux.HandleFunc("GET /api/admin/requests", h.Admin.Requests)
	mux.HandleFunc("PUT /api/admin/requests/{id}/approve", h.Admin.ApproveRequest)
	mux.HandleFunc("PUT /api/admin/requests/{id}/reject", h.Admin.RejectRequest)
	mux.HandleFunc("DELETE /api/admin/cleanup-orphaned-requests", h.Admin.CleanupOrphans)

	mux.HandleFunc("GET /api/admin/activity-logs", h.Audit.List)
	mux.HandleFunc("GET /api/admin/activity-logs/user/{email}", h.Audit.ForUser)
	mux.HandleFunc("GET /api/admin/activity-logs/category/{category}", h.Audit.ByCategory)
	mux.HandleFunc("GET /api/admin/activity-logs/date-range", h.Audit.DateRange)
	mux.HandleFunc("GET /api/admin/activity-logs/search", h.Audit.Search)
	mux.HandleFunc("GET /api/admin/activity-logs/statistics", h.Audit.Statistics)
	mux.HandleFunc("GET /api/admin/activity-logs/recent-count", h.Audit.RecentCount)
	mux.HandleFunc("GET /api/admin/activity-logs/most-active-users", h.Audit.MostActiveUsers)
	mux.HandleFunc("DELETE /api/admin/activity-logs/clear-all", h.Audit.ClearAll)

	return mux
}
