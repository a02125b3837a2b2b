package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/audit"
)

type auditService interface {
	List(ctx context.Context, input audit.ListInput) (*audit.ListResult, error)
	ListForUser(ctx context.Context, email string, page, size int) (*audit.ListResult, error)
	Stats(ctx context.Context, days int) (*domain.AuditStats, error)
	RecentCount(ctx context.Context, hours int) (int64, error)
	MostActive(ctx context.Context, limit, days int) ([]domain.ActorActivity, error)
	ClearAll(ctx context.Context) (int64, error)
}

// AuditHandler serves /api/admin/activity-logs endpoints.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type actorActivityView struct {
	Email    string `json:"userEmail"`
	FullName string `json:"userFullName"`
	Count    int64  `json:"activityCount"`
}

type auditStatsView struct {
	Days            int                 `json:"days"`
	TotalActivities int64               `json:"totalActivities"`
	ByCategory      map[string]int64    `json:"byCategory"`
	MostActiveUsers []actorActivityView `json:"mostActiveUsers"`
}

type recentCountView struct {
	Hours int   `json:"hours"`
	Count int64 `json:"count"`
}

type clearedView struct {
	Deleted int64 `json:"deleted"`
}

func toActorActivityViews(in []domain.ActorActivity) []actorActivityView {
	out := make([]actorActivityView, len(in))
	for i, a := range in {
		out[i] = actorActivityView{Email: a.Email, FullName: a.FullName, Count: a.Count}
	}
	return out
}

// List handles GET /api/admin/activity-logs.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, audit.ListInput{})
}

// ByCategory handles GET /api/admin/activity-logs/category/{category}.
func (h *AuditHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, audit.ListInput{Category: strings.ToUpper(r.PathValue("category"))})
}

// Search handles GET /api/admin/activity-logs/search?query=.
func (h *AuditHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		handleError(h.log, w, r, domain.NewValidationError("query", "required"))
		return
	}
	h.list(w, r, audit.ListInput{Search: query})
}

// DateRange handles GET /api/admin/activity-logs/date-range?startDate=&endDate=.
func (h *AuditHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "startDate")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := queryTime(r, "endDate")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if from == nil || to == nil {
		handleError(h.log, w, r, domain.NewValidationError("startDate", "startDate and endDate are required"))
		return
	}
	h.list(w, r, audit.ListInput{From: from, To: to})
}

func (h *AuditHandler) list(w http.ResponseWriter, r *http.Request, input audit.ListInput) {
	page, size, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.Page, input.Size = page, size

	res, err := h.svc.List(r.Context(), input)
	h.writeEntries(w, r, res, err)
}

// ForUser handles GET /api/admin/activity-logs/user/{email}.
func (h *AuditHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	page, size, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ListForUser(r.Context(), r.PathValue("email"), page, size)
	h.writeEntries(w, r, res, err)
}

func (h *AuditHandler) writeEntries(w http.ResponseWriter, r *http.Request, res *audit.ListResult, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", newPage(toAuditEntryViews(res.Items), res.Total, res.Page, res.Size))
}

// Statistics handles GET /api/admin/activity-logs/statistics?days=.
func (h *AuditHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Stats(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byCategory := make(map[string]int64, len(s.ByCategory))
	for c, n := range s.ByCategory {
		byCategory[c.String()] = n
	}
	writeOK(w, http.StatusOK, "", auditStatsView{
		Days:            s.Days,
		TotalActivities: s.Total,
		ByCategory:      byCategory,
		MostActiveUsers: toActorActivityViews(s.MostActiveUsers),
	})
}

// RecentCount handles GET /api/admin/activity-logs/recent-count?hours=.
func (h *AuditHandler) RecentCount(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.RecentCount(r.Context(), hours)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if hours == 0 {
		hours = audit.DefaultRecentHours
	}
	writeOK(w, http.StatusOK, "", recentCountView{Hours: hours, Count: n})
}

// MostActiveUsers handles GET /api/admin/activity-logs/most-active-users?limit=&days=.
func (h *AuditHandler) MostActiveUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	active, err := h.svc.MostActive(r.Context(), limit, days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", toActorActivityViews(active))
}

// ClearAll handles DELETE /api/admin/activity-logs/clear-all.
func (h *AuditHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClearAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Activity logs cleared", clearedView{Deleted: n})
}

// dateTimeLayouts are the accepted forms of date-range bounds. Values without
// an offset are read as UTC.
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// queryTime parses an optional date-time query parameter; absent yields nil.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(name, "must be an ISO-8601 date-time")
}
