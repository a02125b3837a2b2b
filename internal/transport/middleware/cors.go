package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/campus-collab-backend/internal/config"
)

// corsPolicy is the parsed form of config.CORSConfig.
type corsPolicy struct {
	anyOrigin   bool
	origins     map[string]struct{}
	methods     string
	headers     string
	exposed     string
	credentials bool
	maxAge      string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		origins:     make(map[string]struct{}),
		methods:     cfg.AllowedMethods,
		headers:     cfg.AllowedHeaders,
		exposed:     cfg.ExposedHeaders,
		credentials: cfg.AllowCredentials,
		maxAge:      strconv.Itoa(cfg.MaxAge),
	}
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.anyOrigin = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if p.anyOrigin {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS answers preflight requests with 204 and decorates responses for
// allowed origins. An allowed origin is echoed back, never "*".
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && p.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if p.exposed != "" {
					h.Set("Access-Control-Expose-Headers", p.exposed)
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", p.methods)
				h.Set("Access-Control-Allow-Headers", p.headers)
				h.Set("Access-Control-Max-Age", p.maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
