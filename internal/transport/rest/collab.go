package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

type collabService interface {
	Create(ctx context.Context, projectID int64, message string) (*domain.ContributionRequest, error)
	Approve(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	Reject(ctx context.Context, requestID int64) (*domain.ContributionRequest, error)
	AccessStatus(ctx context.Context, projectID int64) (*domain.AccessDecision, error)
	ListForProject(ctx context.Context, projectID int64) ([]domain.ContributionRequest, error)
	MyRequests(ctx context.Context) ([]domain.ContributionRequest, error)
	PendingForOwner(ctx context.Context) ([]domain.ContributionRequest, error)
}

// CollabHandler serves /api/contributions endpoints.
type CollabHandler struct {
	svc collabService
	log *slog.Logger
}

// NewCollabHandler creates a CollabHandler.
func NewCollabHandler(svc collabService, logger *slog.Logger) *CollabHandler {
	return &CollabHandler{svc: svc, log: logger.With("handler", "collab")}
}

type contributionRequest struct {
	Message string `json:"message"`
}

// accessResponse is flat: clients read hasAccess next to success.
type accessResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	HasAccess bool   `json:"hasAccess"`
	RequestID *int64 `json:"requestId"`
	Message   string `json:"message"`
}

// Create handles POST /api/contributions/{projectId}. The body is optional.
func (h *CollabHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req contributionRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := h.svc.Create(r.Context(), projectID, req.Message)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeRequest(w, r, http.StatusCreated, "Contribution request sent", cr)
}

// Approve handles PUT /api/contributions/{requestId}/approve.
func (h *CollabHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve, "Request approved")
}

// Reject handles PUT /api/contributions/{requestId}/reject.
func (h *CollabHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject, "Request rejected")
}

func (h *CollabHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64) (*domain.ContributionRequest, error),
	msg string,
) {
	id, err := pathID(r, "requestId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cr, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeRequest(w, r, http.StatusOK, msg, cr)
}

// Access handles GET /api/contributions/access/{projectId}.
func (h *CollabHandler) Access(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.AccessStatus(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accessResponse{
		Success:   true,
		Status:    string(d.Status),
		HasAccess: d.HasAccess,
		RequestID: d.RequestID,
		Message:   d.Message,
	})
}

// ForProject handles GET /api/contributions/project/{projectId}.
func (h *CollabHandler) ForProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListForProject(r.Context(), projectID)
	h.writeRequests(w, r, items, err)
}

// Mine handles GET /api/contributions/my-requests.
func (h *CollabHandler) Mine(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.MyRequests(r.Context())
	h.writeRequests(w, r, items, err)
}

// Pending handles GET /api/contributions/pending.
func (h *CollabHandler) Pending(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PendingForOwner(r.Context())
	h.writeRequests(w, r, items, err)
}

func (h *CollabHandler) writeRequests(w http.ResponseWriter, r *http.Request, items []domain.ContributionRequest, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := requestViews(r.Context(), items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", views)
}

func (h *CollabHandler) writeRequest(w http.ResponseWriter, r *http.Request, status int, msg string, cr *domain.ContributionRequest) {
	view, err := requestViewOf(r.Context(), cr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, status, msg, view)
}
