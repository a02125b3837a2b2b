package ctxutil

import (
	"context"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

type ctxKey string

const (
	principalKey  ctxKey = "principal"
	requestIDKey  ctxKey = "request_id"
	clientInfoKey ctxKey = "client_info"
)

// ClientInfo describes the remote peer of the current request.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the authenticated principal from the context.
// Returns nil and false for anonymous requests.
func PrincipalFromCtx(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// PrincipalIDFromCtx returns the id of the authenticated principal.
func PrincipalIDFromCtx(ctx context.Context) (int64, bool) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return p.ID, true
}

// IsAdminCtx reports whether the request is made by an admin.
func IsAdminCtx(ctx context.Context) bool {
	p, ok := PrincipalFromCtx(ctx)
	return ok && p.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientInfo stores the remote peer description in the context.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

// ClientInfoFromCtx returns the remote peer description, or the zero value.
func ClientInfoFromCtx(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey).(ClientInfo)
	return info
}
