// Package project implements the project store (projects, project_likes) using PostgreSQL.
package project

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

const columns = `id, owner_id, name, description, tech_stack, repo_url, status, view_count, like_count, created_at`

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+columns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// GetByIDs returns the projects among ids that exist.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM projects WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get projects by ids: %w", err)
	}
	return collect(rows)
}

// List returns projects matching f, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("projects").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count projects: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).
		From("projects").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	items, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Count returns the total number of projects.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// IsLikedBy reports whether userID currently likes the project.
func (r *Repo) IsLikedBy(ctx context.Context, projectID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var liked bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM project_likes WHERE project_id = $1 AND user_id = $2)`,
		projectID, userID,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO projects (owner_id, name, description, tech_stack, repo_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+columns,
		p.OwnerID, p.Name, p.Description, p.TechStack, p.RepoURL, string(p.Status),
	)
	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.Name)
	}
	return created, nil
}

// IncrementViews atomically bumps the view counter and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	err := q.QueryRow(ctx,
		`UPDATE projects SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "project", id)
	}
	return n, nil
}

// InsertLike records a like. It reports false if the like already existed.
func (r *Repo) InsertLike(ctx context.Context, projectID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO project_likes (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		projectID, userID,
	)
	if err != nil {
		return false, postgres.MapError(err, "project", projectID)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteLike removes a like. It reports false if there was none.
func (r *Repo) DeleteLike(ctx context.Context, projectID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM project_likes WHERE project_id = $1 AND user_id = $2`,
		projectID, userID,
	)
	if err != nil {
		return false, postgres.MapError(err, "project", projectID)
	}
	return tag.RowsAffected() == 1, nil
}

// AdjustLikeCount adds delta to the like counter, never going below zero.
func (r *Repo) AdjustLikeCount(ctx context.Context, id int64, delta int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	err := q.QueryRow(ctx,
		`UPDATE projects SET like_count = GREATEST(like_count + $2, 0) WHERE id = $1 RETURNING like_count`,
		id, delta,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "project", id)
	}
	return n, nil
}

// UpdateStatus sets the moderation status of a project.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx,
		`UPDATE projects SET status = $2 WHERE id = $1 RETURNING `+columns, id, string(status),
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// Delete removes a project together with its likes and contribution requests.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.ExecOne(ctx, q, "project", id, `DELETE FROM projects WHERE id = $1`, id)
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p      domain.Project
		status string
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.TechStack, &p.RepoURL,
		&status, &p.ViewCount, &p.LikeCount, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.ProjectStatus(status)
	return &p, nil
}

func collect(rows pgx.Rows) ([]domain.Project, error) {
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}
