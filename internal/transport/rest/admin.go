package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/admin"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
)

type adminService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	ListStudents(ctx context.Context, status string, page, size int) (*admin.StudentList, error)
	UpdateStudentStatus(ctx context.Context, id int64, status string) (*domain.Principal, error)
	DeleteStudent(ctx context.Context, id int64) error
	SetProjectStatus(ctx context.Context, id int64, status string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	ListRequests(ctx context.Context, status string, page, size int) (*collab.ListResult, error)
	ApproveRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	RejectRequest(ctx context.Context, id int64) (*domain.ContributionRequest, error)
	CleanupOrphanedRequests(ctx context.Context) (int64, error)
}

// AdminHandler serves /api/admin endpoints other than activity logs.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type dashboardView struct {
	TotalStudents        int64 `json:"totalStudents"`
	TotalProjects        int64 `json:"totalProjects"`
	PendingRequests      int64 `json:"pendingRequests"`
	ActiveCollaborations int64 `json:"activeCollaborations"`
}

type studentStatusRequest struct {
	Status string `json:"status"`
}

type cleanupView struct {
	Deleted int64 `json:"deleted"`
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", dashboardView{
		TotalStudents:        s.TotalStudents,
		TotalProjects:        s.TotalProjects,
		PendingRequests:      s.PendingRequests,
		ActiveCollaborations: s.ApprovedCollaborations,
	})
}

// Students handles GET /api/admin/students?status=&page=&size=.
func (h *AdminHandler) Students(w http.ResponseWriter, r *http.Request) {
	page, size, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ListStudents(r.Context(), r.URL.Query().Get("status"), page, size)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", newPage(toPrincipalViews(res.Items), res.Total, res.Page, res.Size))
}

// UpdateStudent handles PUT /api/admin/students/{id}.
func (h *AdminHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req studentStatusRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateStudentStatus(r.Context(), id, req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Student updated", toPrincipalView(p))
}

// DeleteStudent handles DELETE /api/admin/students/{id}.
func (h *AdminHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteStudent, "Student deleted")
}

// ApproveProject handles PUT /api/admin/projects/{id}/approve.
func (h *AdminHandler) ApproveProject(w http.ResponseWriter, r *http.Request) {
	h.setProjectStatus(w, r, domain.ProjectStatusApproved, "Project approved")
}

// RejectProject handles PUT /api/admin/projects/{id}/reject.
func (h *AdminHandler) RejectProject(w http.ResponseWriter, r *http.Request) {
	h.setProjectStatus(w, r, domain.ProjectStatusRejected, "Project rejected")
}

func (h *AdminHandler) setProjectStatus(w http.ResponseWriter, r *http.Request, status domain.ProjectStatus, msg string) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.SetProjectStatus(r.Context(), id, status.String())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := projectViewOf(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, msg, view)
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteProject, "Project deleted")
}

// Requests handles GET /api/admin/requests?status=&page=&size=.
func (h *AdminHandler) Requests(w http.ResponseWriter, r *http.Request) {
	page, size, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ListRequests(r.Context(), r.URL.Query().Get("status"), page, size)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := requestViews(r.Context(), res.Items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", newPage(views, res.Total, res.Page, res.Size))
}

// ApproveRequest handles PUT /api/admin/requests/{id}/approve.
func (h *AdminHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.decideRequest(w, r, h.svc.ApproveRequest, "Request approved")
}

// RejectRequest handles PUT /api/admin/requests/{id}/reject.
func (h *AdminHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decideRequest(w, r, h.svc.RejectRequest, "Request rejected")
}

func (h *AdminHandler) decideRequest(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64) (*domain.ContributionRequest, error),
	msg string,
) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := requestViewOf(r.Context(), cr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, msg, view)
}

// CleanupOrphans handles DELETE /api/admin/cleanup-orphaned-requests.
func (h *AdminHandler) CleanupOrphans(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CleanupOrphanedRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Orphaned requests cleaned up", cleanupView{Deleted: n})
}

func (h *AdminHandler) deleteByID(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64) error,
	msg string,
) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := fn(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, msg, nil)
}
