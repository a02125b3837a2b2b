// Package user implements the identity store (users table) using PostgreSQL.
package user

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

const columns = `id, email, full_name, roll_number, course, semester, role, account_status,
	password_hash, created_at, last_login_at`

// Repo provides principal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a principal by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id)
	p, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return p, nil
}

// GetByEmail returns a principal by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE email = $1`, domain.NormalizeEmail(email))
	p, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return p, nil
}

// GetByIDs returns the principals among ids that exist, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Principal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	return collect(rows)
}

// List returns principals matching f ordered by creation, plus the total count.
func (r *Repo) List(ctx context.Context, f domain.PrincipalFilter) ([]domain.Principal, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if len(f.Roles) > 0 {
		roles := make([]string, len(f.Roles))
		for i, role := range f.Roles {
			roles[i] = string(role)
		}
		where = append(where, sq.Eq{"role": roles})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"account_status": string(*f.Status)})
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count users: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).
		From("users").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	items, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CountByRole returns the number of principals holding role.
func (r *Repo) CountByRole(ctx context.Context, roles ...domain.Role) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	var n int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = ANY($1)`, names).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new principal and returns it with id and created_at set.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO users (email, full_name, roll_number, course, semester, role, account_status, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+columns,
		domain.NormalizeEmail(p.Email), p.FullName, p.RollNumber, p.Course, p.Semester,
		string(p.Role), string(p.Status), p.PasswordHash,
	)
	created, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", p.Email)
	}
	return created, nil
}

// UpdateProfile overwrites the editable profile fields and the derived role.
func (r *Repo) UpdateProfile(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE users SET full_name = $2, roll_number = $3, course = $4, semester = $5, role = $6
		 WHERE id = $1
		 RETURNING `+columns,
		p.ID, p.FullName, p.RollNumber, p.Course, p.Semester, string(p.Role),
	)
	updated, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", p.ID)
	}
	return updated, nil
}

// UpdateStatus sets the account status of a principal.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE users SET account_status = $2 WHERE id = $1 RETURNING `+columns,
		id, string(status),
	)
	updated, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return updated, nil
}

// UpdateRole sets the role of a principal.
func (r *Repo) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.Principal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE users SET role = $2 WHERE id = $1 RETURNING `+columns,
		id, string(role),
	)
	updated, err := scanPrincipal(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return updated, nil
}

// TouchLastLogin records a successful login.
func (r *Repo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.ExecOne(ctx, q, "user", id, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
}

// Delete removes a principal. Projects, requests, likes and audit entries
// of the principal are removed by ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.ExecOne(ctx, q, "user", id, `DELETE FROM users WHERE id = $1`, id)
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanPrincipal(row pgx.Row) (*domain.Principal, error) {
	var (
		p      domain.Principal
		role   string
		status string
	)
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.RollNumber, &p.Course, &p.Semester,
		&role, &status, &p.PasswordHash, &p.CreatedAt, &p.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	p.Role = domain.Role(role)
	p.Status = domain.AccountStatus(status)
	return &p, nil
}

func collect(rows pgx.Rows) ([]domain.Principal, error) {
	defer rows.Close()

	var out []domain.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
