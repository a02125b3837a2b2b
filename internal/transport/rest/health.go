package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// auditBacklog reports the state of the asynchronous audit writer.
type auditBacklog interface {
	Backlog() (queued, capacity int)
}

// auditDegradedRatio is the queue fill level at which the audit writer is reported degraded.
const auditDegradedRatio = 0.9

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	audit   auditBacklog
	version string
}

// NewHealthHandler creates a HealthHandler. audit may be nil.
func NewHealthHandler(db dbPinger, audit auditBacklog, version string) *HealthHandler {
	return &HealthHandler{db: db, audit: audit, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports every component. A down database yields 503; a nearly full
// audit queue only degrades the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if h.audit != nil {
		queued, capacity := h.audit.Backlog()
		comp := CompStatus{Status: "ok", Detail: fmt.Sprintf("%d/%d queued", queued, capacity)}
		if capacity > 0 && float64(queued) >= auditDegradedRatio*float64(capacity) {
			comp.Status = "degraded"
			if overall == "ok" {
				overall = "degraded"
			}
		}
		components["audit_queue"] = comp
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
