package middleware

import (
	"context"
	"net/http"
)

// requestMeta carries facts discovered deep in the chain (the principal,
// the matched route) back out to the observing middleware.
type requestMeta struct {
	principalID int64
	route       string
}

type metaKey struct{}

func metaFrom(ctx context.Context) *requestMeta {
	m, _ := ctx.Value(metaKey{}).(*requestMeta)
	return m
}

// withMeta returns r carrying a requestMeta, reusing one set further out.
func withMeta(r *http.Request) (*http.Request, *requestMeta) {
	if m := metaFrom(r.Context()); m != nil {
		return r, m
	}
	m := &requestMeta{}
	return r.WithContext(context.WithValue(r.Context(), metaKey{}, m)), m
}

// RoutePattern wraps the router so the matched ServeMux pattern is visible
// to Metrics. It must be the innermost layer.
func RoutePattern(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r)
		if m := metaFrom(r.Context()); m != nil && r.Pattern != "" {
			m.route = r.Pattern
		}
	})
}
