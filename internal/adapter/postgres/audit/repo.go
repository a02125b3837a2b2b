// Package audit implements the append-only audit log store using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

const columns = `id, actor_id, actor_email, actor_name, actor_role, action_type, category, description,
	entity_type, entity_id, old_value, new_value, ip_address, user_agent, status, error_message, created_at`

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists an entry. A deleted actor yields domain.ErrNotFound.
func (r *Repo) Insert(ctx context.Context, e domain.AuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var entityType *string
	if e.EntityType != nil {
		s := string(*e.EntityType)
		entityType = &s
	}

	_, err := q.Exec(ctx,
		`INSERT INTO audit_log (`+columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		e.ID, e.Actor.ID, e.Actor.Email, e.Actor.FullName, string(e.Actor.Role),
		string(e.Action), string(e.Category), e.Description,
		entityType, e.EntityID, e.OldValue, e.NewValue,
		e.IPAddress, e.UserAgent, string(e.Status), e.ErrorMessage, e.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit entry", e.ID)
	}
	return nil
}

// DeleteAll removes every entry and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM audit_log`)
	if err != nil {
		return 0, fmt.Errorf("clear audit log: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteOlderThan removes entries created before t.
func (r *Repo) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM audit_log WHERE created_at < $1`, t)
	if err != nil {
		return 0, fmt.Errorf("purge audit log: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns entries matching f, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := filterClause(f)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("audit_log").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count audit: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).
		From("audit_log").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list audit: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()

	var items []domain.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit: %w", err)
	}
	return items, total, nil
}

// CountSince returns the number of entries created at or after since.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM audit_log WHERE created_at >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count audit since: %w", err)
	}
	return n, nil
}

// CountByCategorySince groups entries created at or after since by category.
func (r *Repo) CountByCategorySince(ctx context.Context, since time.Time) (map[domain.AuditCategory]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT category, count(*) FROM audit_log WHERE created_at >= $1 GROUP BY category`, since)
	if err != nil {
		return nil, fmt.Errorf("count audit by category: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.AuditCategory]int64)
	for rows.Next() {
		var (
			category string
			n        int64
		)
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out[domain.AuditCategory(category)] = n
	}
	return out, rows.Err()
}

// MostActiveSince returns up to limit actors with the most entries since the given time.
func (r *Repo) MostActiveSince(ctx context.Context, since time.Time, limit int) ([]domain.ActorActivity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT actor_email, max(actor_name), count(*) AS n
		 FROM audit_log
		 WHERE created_at >= $1 AND actor_email <> 'anonymous'
		 GROUP BY actor_email
		 ORDER BY n DESC, actor_email
		 LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("most active actors: %w", err)
	}
	defer rows.Close()

	var out []domain.ActorActivity
	for rows.Next() {
		var a domain.ActorActivity
		if err := rows.Scan(&a.Email, &a.FullName, &a.Count); err != nil {
			return nil, fmt.Errorf("scan actor activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterClause(f domain.AuditFilter) sq.And {
	where := sq.And{}
	if f.ActorEmail != "" {
		where = append(where, sq.Eq{"actor_email": domain.NormalizeEmail(f.ActorEmail)})
	}
	if f.Category != nil {
		where = append(where, sq.Eq{"category": string(*f.Category)})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"created_at": *f.To})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"actor_email": pattern},
			sq.ILike{"actor_name": pattern},
			sq.ILike{"action_type": pattern},
			sq.ILike{"description": pattern},
		})
	}
	return where
}

func scanEntry(row pgx.Row) (domain.AuditEntry, error) {
	var (
		e                              domain.AuditEntry
		role, action, category, status string
		entityType                     *string
	)
	err := row.Scan(
		&e.ID, &e.Actor.ID, &e.Actor.Email, &e.Actor.FullName, &role,
		&action, &category, &e.Description,
		&entityType, &e.EntityID, &e.OldValue, &e.NewValue,
		&e.IPAddress, &e.UserAgent, &status, &e.ErrorMessage, &e.CreatedAt,
	)
	if err != nil {
		return domain.AuditEntry{}, err
	}
	e.Actor.Role = domain.Role(role)
	e.Action = domain.AuditAction(action)
	e.Category = domain.AuditCategory(category)
	e.Status = domain.AuditStatus(status)
	if entityType != nil {
		et := domain.EntityType(*entityType)
		e.EntityType = &et
	}
	return e, nil
}
