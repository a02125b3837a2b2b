package auth

import "github.com/heartmarshall/campus-collab-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	Principal *domain.Principal
}
