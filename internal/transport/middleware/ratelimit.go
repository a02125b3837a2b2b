package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	clients sync.Map // map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	stop    chan struct{}
	once    sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute with the given
// burst per client, with background cleanup of idle clients. Call Stop() on shutdown.
func NewRateLimiter(requestsPerMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit: rate.Limit(float64(requestsPerMinute) / 60.0),
		burst: burst,
		stop:  make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := rl.limiterFor(remoteHost(r))

			res := lim.Reserve()
			if !res.OK() {
				writeTooManyRequests(w, 0)
				return
			}
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				writeTooManyRequests(w, int(delay.Seconds())+1)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(lim.Tokens())))
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	val, _ := rl.clients.LoadOrStore(key, &clientLimiter{
		limiter:  rate.NewLimiter(rl.limit, rl.burst),
		lastSeen: time.Now(),
	})
	cl := val.(*clientLimiter)
	cl.mu.Lock()
	cl.lastSeen = time.Now()
	cl.mu.Unlock()
	return cl.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.clients.Range(func(key, value any) bool {
				cl := value.(*clientLimiter)
				cl.mu.Lock()
				idle := now.Sub(cl.lastSeen)
				cl.mu.Unlock()
				if idle > 10*time.Minute {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}

func writeTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	if retryAfterSecs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSecs))
	}
	writeEnvelopeError(w, http.StatusTooManyRequests, "rate limit exceeded")
}
