// Package authz holds the per-operation authorization predicates evaluated
// against the principal attached by the authentication gate.
//
// Every predicate returns domain.ErrUnauthorized when no principal is present
// and domain.ErrForbidden when one is present but not allowed. Callers must not
// perform the guarded operation when a predicate returns an error.
package authz

import (
	"context"
	"slices"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

// Authenticated returns the principal of the request or ErrUnauthorized.
func Authenticated(ctx context.Context) (*domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}

// RequireActive additionally rejects suspended and inactive accounts.
func RequireActive(ctx context.Context) (*domain.Principal, error) {
	p, err := Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// RequireRole passes when the principal holds one of roles.
func RequireRole(ctx context.Context, roles ...domain.Role) (*domain.Principal, error) {
	p, err := Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(roles, p.Role) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// RequireAdmin is RequireRole(ctx, domain.RoleAdmin).
func RequireAdmin(ctx context.Context) (*domain.Principal, error) {
	return RequireRole(ctx, domain.RoleAdmin)
}

// RequireOwner passes when the principal is the owner of the resource.
func RequireOwner(ctx context.Context, ownerID int64) (*domain.Principal, error) {
	p, err := Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if p.ID != ownerID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// RequireOwnerOrAdmin passes for the resource owner and for admins.
func RequireOwnerOrAdmin(ctx context.Context, ownerID int64) (*domain.Principal, error) {
	p, err := Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if p.ID != ownerID && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// RequireSelfOrAdmin passes when the principal is the target or an admin.
func RequireSelfOrAdmin(ctx context.Context, targetID int64) (*domain.Principal, error) {
	return RequireOwnerOrAdmin(ctx, targetID)
}

// RequireSelfOrAdminByEmail is RequireSelfOrAdmin keyed by email.
func RequireSelfOrAdminByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	p, err := Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if p.Email != domain.NormalizeEmail(email) && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
