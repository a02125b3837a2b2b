package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
)

// ClientInfo stores the caller's address and user agent for audit entries.
// The first X-Forwarded-For hop wins over X-Real-IP and RemoteAddr.
func ClientInfo() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := ctxutil.ClientInfo{
				IP:        forwardedIP(r),
				UserAgent: r.UserAgent(),
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientInfo(r.Context(), info)))
		})
	}
}

func forwardedIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return remoteHost(r)
}

// remoteHost is RemoteAddr without the port.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
