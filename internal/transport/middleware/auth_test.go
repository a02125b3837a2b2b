package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

var publicPrefixes = []string{"/api/auth/", "/api/files/"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func knownPrincipal() *principalLoaderMock {
	return &principalLoaderMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.Principal, error) {
			if email == "ana@campus.edu" {
				return &domain.Principal{ID: 11, Email: email, Role: domain.RoleStudent}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

// serveGate runs one request through the gate and reports the principal the handler saw.
func serveGate(t *testing.T, v *tokenVerifierMock, l *principalLoaderMock, path, header string) (*domain.Principal, int) {
	t.Helper()

	var seen *domain.Principal
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ctxutil.PrincipalFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	Auth(v, l, discardLogger(), publicPrefixes)(handler).ServeHTTP(rec, req)
	return seen, rec.Code
}

func TestAuth_ValidToken(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(token string) (string, error) {
		if token == "good" {
			return "ana@campus.edu", nil
		}
		return "", errors.New("invalid token")
	}}

	p, code := serveGate(t, v, knownPrincipal(), "/api/projects", "Bearer good")
	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if p == nil || p.ID != 11 {
		t.Fatalf("expected principal 11 in context, got %+v", p)
	}
}

func TestAuth_InvalidTokenContinuesAnonymously(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) {
		return "", errors.New("signature mismatch")
	}}

	p, code := serveGate(t, v, knownPrincipal(), "/api/projects", "Bearer forged")
	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if p != nil {
		t.Errorf("expected anonymous request, got principal %+v", p)
	}
}

func TestAuth_UnknownPrincipalContinuesAnonymously(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) {
		return "gone@campus.edu", nil
	}}

	p, code := serveGate(t, v, knownPrincipal(), "/api/projects", "Bearer stale")
	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if p != nil {
		t.Errorf("expected anonymous request, got principal %+v", p)
	}
}

func TestAuth_NoAuthHeader(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) {
		t.Error("Verify should not be called when no header present")
		return "", nil
	}}

	p, _ := serveGate(t, v, knownPrincipal(), "/api/projects", "")
	if p != nil {
		t.Error("expected no principal for anonymous request")
	}
	if len(v.VerifyCalls()) > 0 {
		t.Error("Verify should not be called for anonymous request")
	}
}

func TestAuth_NonBearerToken(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) {
		t.Error("Verify should not be called for non-Bearer token")
		return "", nil
	}}

	p, _ := serveGate(t, v, knownPrincipal(), "/api/projects", "Basic dXNlcjpwYXNz")
	if p != nil {
		t.Error("expected no principal for non-Bearer header")
	}
}

func TestAuth_PublicPrefixesBypass(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) {
		return "ana@campus.edu", nil
	}}

	for _, path := range []string{"/api/auth/login", "/api/files/report.pdf"} {
		p, code := serveGate(t, v, knownPrincipal(), path, "Bearer good")
		if code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, code)
		}
		if p != nil {
			t.Errorf("%s: expected gate bypass, got principal %+v", path, p)
		}
	}
	if len(v.VerifyCalls()) > 0 {
		t.Error("Verify should not be called on public paths")
	}
}

func TestAuth_InactivePrincipalStillAttached(t *testing.T) {
	v := &tokenVerifierMock{VerifyFunc: func(string) (string, error) { return "s@campus.edu", nil }}
	l := &principalLoaderMock{GetByEmailFunc: func(ctx context.Context, email string) (*domain.Principal, error) {
		return &domain.Principal{ID: 5, Status: domain.AccountStatusSuspended}, nil
	}}

	p, _ := serveGate(t, v, l, "/api/users/me", "Bearer t")
	if p == nil || p.Status != domain.AccountStatusSuspended {
		t.Errorf("expected suspended principal attached, got %+v", p)
	}
}
