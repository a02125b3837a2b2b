package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (string, error)
}

type principalLoader interface {
	GetByEmail(ctx context.Context, email string) (*domain.Principal, error)
}

// Auth resolves the bearer token into a principal and attaches it to the
// request context. It never rejects: requests with a missing, invalid or
// expired token, or an unknown principal, continue anonymously and the
// handlers decide. Paths under publicPrefixes bypass the gate entirely.
func Auth(verifier tokenVerifier, loader principalLoader, logger *slog.Logger, publicPrefixes []string) Middleware {
	log := logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path, publicPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			email, err := verifier.Verify(token)
			if err != nil {
				log.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			p, err := loader.GetByEmail(r.Context(), email)
			if err != nil {
				log.WarnContext(r.Context(), "principal lookup failed",
					slog.String("email", email),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if m := metaFrom(r.Context()); m != nil {
				m.principalID = p.ID
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
		})
	}
}

func isPublic(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
