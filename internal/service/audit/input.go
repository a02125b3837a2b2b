package audit

import (
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Paging defaults for audit listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	DefaultStatsDays   = 30
	MaxStatsDays       = 365
	DefaultRecentHours = 24
	DefaultActiveLimit = 10
)

// ListInput holds filters for an audit listing. Page is zero-based.
type ListInput struct {
	ActorEmail string
	Category   string
	From       *time.Time
	To         *time.Time
	Search     string
	Page       int
	Size       int
}

// Validate checks the listing filters.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != "" && !domain.AuditCategory(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "must not be after endDate"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 0"})
	}
	if i.Size < 0 || i.Size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be between 1 and 100"})
	}
	if len(i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "query", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.AuditFilter {
	size := i.Size
	if size == 0 {
		size = DefaultPageSize
	}
	f := domain.AuditFilter{
		ActorEmail: i.ActorEmail,
		From:       i.From,
		To:         i.To,
		Search:     i.Search,
		Limit:      size,
		Offset:     i.Page * size,
	}
	if i.Category != "" {
		c := domain.AuditCategory(i.Category)
		f.Category = &c
	}
	return f
}

// ListResult is one page of audit entries.
type ListResult struct {
	Items []domain.AuditEntry
	Total int
	Page  int
	Size  int
}

// TotalPages returns the number of pages for the result's size.
func (r ListResult) TotalPages() int {
	if r.Size == 0 {
		return 0
	}
	return (r.Total + r.Size - 1) / r.Size
}
