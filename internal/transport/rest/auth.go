package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/campus-collab-backend/internal/service/auth"
)

// authService defines what AuthHandler needs from the auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler serves /api/auth endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RollNumber string `json:"rollNumber"`
	Course     string `json:"course"`
	Semester   int    `json:"semester"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType"`
	User      principalView `json:"user"`
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	return authResponse{Token: res.Token, TokenType: "Bearer", User: toPrincipalView(res.Principal)}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		RollNumber: req.RollNumber,
		Course:     req.Course,
		Semester:   req.Semester,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, "Registration successful", toAuthResponse(res))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "Login successful", toAuthResponse(res))
}

// Logout handles POST /api/auth/logout. The gate skips /api/auth/, so the
// token is passed through for the service to resolve.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), bearerToken(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Logged out successfully", nil)
}

func bearerToken(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
