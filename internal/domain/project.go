package domain

import "time"

// Project is a student project that others may request download access to.
type Project struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	TechStack   string
	RepoURL     string
	Status      ProjectStatus
	ViewCount   int64
	LikeCount   int64
	CreatedAt   time.Time
}

// IsOwnedBy reports whether principalID owns the project.
func (p *Project) IsOwnedBy(principalID int64) bool {
	return p != nil && p.OwnerID == principalID
}

// LikeResult is returned by like toggling.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	TotalStudents          int64
	TotalProjects          int64
	PendingRequests        int64
	ApprovedCollaborations int64
}

// ProjectFilter selects projects for listings.
type ProjectFilter struct {
	OwnerID *int64
	Status  *ProjectStatus
	Limit   int
	Offset  int
}
