package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/user"
)

type userService interface {
	Me(ctx context.Context) (*domain.Principal, error)
	GetProfile(ctx context.Context, id int64) (*domain.Principal, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.Principal, error)
}

// UserHandler serves /api/users endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	FullName   *string `json:"fullName"`
	RollNumber *string `json:"rollNumber"`
	Course     *string `json:"course"`
	Semester   *int    `json:"semester"`
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", toPrincipalView(p))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", toPrincipalView(p))
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		FullName:   req.FullName,
		RollNumber: req.RollNumber,
		Course:     req.Course,
		Semester:   req.Semester,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Profile updated", toPrincipalView(p))
}
