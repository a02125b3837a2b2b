package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Principals by ID
// ---------------------------------------------------------------------------

func newPrincipalBatchFn(repo principalRepo) dataloader.BatchFunc[int64, *domain.Principal] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Principal] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Principal](len(keys), err)
		}

		byID := make(map[int64]*domain.Principal, len(rows))
		for i := range rows {
			p := rows[i]
			byID[p.ID] = &p
		}
		return mapResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Projects by ID
// ---------------------------------------------------------------------------

func newProjectBatchFn(repo projectRepo) dataloader.BatchFunc[int64, *domain.Project] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Project] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Project](len(keys), err)
		}

		byID := make(map[int64]*domain.Project, len(rows))
		for i := range rows {
			p := rows[i]
			byID[p.ID] = &p
		}
		return mapResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps rows back to key order; missing keys get the zero value.
func mapResults[V any](keys []int64, byID map[int64]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: byID[key]}
	}
	return results
}
