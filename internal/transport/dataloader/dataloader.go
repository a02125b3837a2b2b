// Package dataloader provides per-request DataLoaders that batch the
// principal and project lookups needed to enrich REST views into single SQL
// calls. DataLoaders call repositories directly, bypassing the service layer;
// they only resolve display names for rows the caller was already allowed to see.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type principalRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Principal, error)
}

type projectRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Project, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Principal principalRepo
	Project   projectRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
// A key with no row resolves to nil data.
type Loaders struct {
	PrincipalByID *dataloader.Loader[int64, *domain.Principal]
	ProjectByID   *dataloader.Loader[int64, *domain.Project]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		PrincipalByID: newLoader(newPrincipalBatchFn(repos.Principal)),
		ProjectByID:   newLoader(newProjectBatchFn(repos.Project)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
