package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPrincipal creates an active user with the given role.
func SeedPrincipal(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Principal {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	p := domain.Principal{
		Email:        "student-" + suffix + "@campus.edu",
		FullName:     "Student " + suffix,
		RollNumber:   "R-" + suffix,
		Course:       "CSE",
		Semester:     3,
		Role:         role,
		Status:       domain.AccountStatusActive,
		PasswordHash: "$2a$04$invalidhashfortestsonlyxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, full_name, roll_number, course, semester, role, account_status, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		p.Email, p.FullName, p.RollNumber, p.Course, p.Semester, string(p.Role), string(p.Status), p.PasswordHash,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPrincipal insert user: %v", err)
	}

	return p
}

// SeedProject creates an approved project owned by ownerID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID int64) domain.Project {
	t.Helper()
	ctx := context.Background()

	p := domain.Project{
		OwnerID:     ownerID,
		Name:        "Project " + uniqueSuffix(),
		Description: "seeded",
		Status:      domain.ProjectStatusApproved,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO projects (owner_id, name, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.OwnerID, p.Name, p.Description, string(p.Status),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return p
}

// SeedRequest creates a contribution request in the given status.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, projectID, requesterID int64, status domain.RequestStatus) domain.ContributionRequest {
	t.Helper()
	ctx := context.Background()

	r := domain.ContributionRequest{
		ProjectID:   projectID,
		RequesterID: requesterID,
		Message:     "please",
		Status:      status,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO contribution_requests (project_id, requester_id, message, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, requested_at`,
		r.ProjectID, r.RequesterID, r.Message, string(r.Status),
	).Scan(&r.ID, &r.RequestedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert request: %v", err)
	}

	return r
}
