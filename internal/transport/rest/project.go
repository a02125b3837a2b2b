package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/project"
)

type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Browse(ctx context.Context, page, size int) (*project.ListResult, error)
	Mine(ctx context.Context, page, size int) (*project.ListResult, error)
	ToggleLike(ctx context.Context, projectID int64) (*domain.LikeResult, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectHandler serves /api/projects endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	CodeLink    string `json:"codeLink"`
}

type likeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateInput{
		Name:        req.ProjectName,
		Description: req.Description,
		TechStack:   req.TechStack,
		RepoURL:     req.CodeLink,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeProject(w, r, http.StatusCreated, "Project submitted for review", p)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeProject(w, r, http.StatusOK, "", p)
}

// Browse handles GET /api/projects.
func (h *ProjectHandler) Browse(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.Browse)
}

// Mine handles GET /api/projects/my.
func (h *ProjectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.Mine)
}

func (h *ProjectHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, page, size int) (*project.ListResult, error),
) {
	page, size, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := fetch(r.Context(), page, size)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := projectViews(r.Context(), res.Items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", newPage(views, res.Total, res.Page, res.Size))
}

// Like handles POST /api/projects/{id}/like. It toggles the caller's like.
func (h *ProjectHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ToggleLike(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg := "Project unliked"
	if res.Liked {
		msg = "Project liked"
	}
	writeOK(w, http.StatusOK, msg, likeResponse{Liked: res.Liked, LikeCount: res.LikeCount})
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) writeProject(w http.ResponseWriter, r *http.Request, status int, msg string, p *domain.Project) {
	view, err := projectViewOf(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, status, msg, view)
}
