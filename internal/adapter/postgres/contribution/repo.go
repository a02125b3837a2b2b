// Package contribution implements the contribution request store using PostgreSQL.
package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

const columns = `cr.id, cr.project_id, cr.requester_id, cr.message, cr.status,
	cr.requested_at, cr.decided_at, cr.decided_by`

// Repo provides contribution request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ContributionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cr, err := scanRequest(q.QueryRow(ctx, `SELECT `+columns+` FROM contribution_requests cr WHERE cr.id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "contribution request", id)
	}
	return cr, nil
}

// Latest returns the request that decides requesterID's access to projectID:
// the most recently decided one, or the newest pending one when none was
// decided. A pending duplicate never hides an earlier decision.
func (r *Repo) Latest(ctx context.Context, projectID, requesterID int64) (*domain.ContributionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+columns+` FROM contribution_requests cr
		 WHERE cr.project_id = $1 AND cr.requester_id = $2
		 ORDER BY cr.decided_at DESC NULLS LAST, cr.requested_at DESC, cr.id DESC
		 LIMIT 1`,
		projectID, requesterID,
	)
	cr, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, "contribution request", fmt.Sprintf("%d/%d", projectID, requesterID))
	}
	return cr, nil
}

// List returns requests matching f, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.RequestFilter) ([]domain.ContributionRequest, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.ProjectID != nil {
		where = append(where, sq.Eq{"cr.project_id": *f.ProjectID})
	}
	if f.RequesterID != nil {
		where = append(where, sq.Eq{"cr.requester_id": *f.RequesterID})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"p.owner_id": *f.OwnerID})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"cr.status": string(*f.Status)})
	}

	base := func(b sq.SelectBuilder) sq.SelectBuilder {
		b = b.From("contribution_requests cr")
		if f.OwnerID != nil {
			b = b.Join("projects p ON p.id = cr.project_id")
		}
		return b.Where(where)
	}

	countSQL, countArgs, err := base(postgres.Builder().Select("count(*)")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count requests: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	list := base(postgres.Builder().Select(columns)).OrderBy("cr.requested_at DESC", "cr.id DESC")
	if f.Limit > 0 {
		list = list.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}
	listSQL, listArgs, err := list.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list requests: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var items []domain.ContributionRequest
	for rows.Next() {
		cr, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		items = append(items, *cr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate requests: %w", err)
	}
	return items, total, nil
}

// CountByStatus returns the number of requests in status.
func (r *Repo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM contribution_requests WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count requests by status: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new PENDING request.
func (r *Repo) Create(ctx context.Context, projectID, requesterID int64, message string) (*domain.ContributionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO contribution_requests AS cr (project_id, requester_id, message, status)
		 VALUES ($1, $2, $3, 'PENDING')
		 RETURNING `+columns,
		projectID, requesterID, message,
	)
	cr, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, "contribution request", projectID)
	}
	return cr, nil
}

// Transition moves a PENDING request to target, recording who decided and when.
// It returns domain.ErrConflict when the request exists but is no longer
// PENDING, and domain.ErrNotFound when it does not exist.
func (r *Repo) Transition(ctx context.Context, id int64, target domain.RequestStatus, decidedBy int64, at time.Time) (*domain.ContributionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE contribution_requests AS cr
		 SET status = $2, decided_at = $3, decided_by = $4
		 WHERE cr.id = $1 AND cr.status = 'PENDING'
		 RETURNING `+columns,
		id, string(target), at, decidedBy,
	)
	cr, err := scanRequest(row)
	if err == nil {
		return cr, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "contribution request", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM contribution_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("contribution request %d: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("contribution request %d: %w", id, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("contribution request %d is not pending: %w", id, domain.ErrConflict)
}

// DeleteOrphaned removes requests whose project or requester no longer exists.
func (r *Repo) DeleteOrphaned(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM contribution_requests cr
		 WHERE NOT EXISTS (SELECT 1 FROM projects p WHERE p.id = cr.project_id)
		    OR NOT EXISTS (SELECT 1 FROM users u WHERE u.id = cr.requester_id)`,
	)
	if err != nil {
		return 0, fmt.Errorf("delete orphaned requests: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanRequest(row pgx.Row) (*domain.ContributionRequest, error) {
	var (
		cr     domain.ContributionRequest
		status string
	)
	err := row.Scan(
		&cr.ID, &cr.ProjectID, &cr.RequesterID, &cr.Message, &status,
		&cr.RequestedAt, &cr.DecidedAt, &cr.DecidedBy,
	)
	if err != nil {
		return nil, err
	}
	cr.Status = domain.RequestStatus(status)
	return &cr, nil
}
