package domain

import (
	"strings"
	"time"
)

// SeniorSemester is the first semester at which a student is promoted to SENIOR.
const SeniorSemester = 5

// Principal is an authenticated identity as stored in the identity store.
type Principal struct {
	ID           int64
	Email        string
	FullName     string
	RollNumber   string
	Course       string
	Semester     int
	Role         Role
	Status       AccountStatus
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsActive reports whether the account may perform state-changing operations.
func (p *Principal) IsActive() bool {
	return p != nil && p.Status == AccountStatusActive
}

// DeriveRole is the only place where the semester-based promotion rule lives.
// Admins are never demoted; other principals are SENIOR from SeniorSemester on.
func DeriveRole(current Role, semester int) Role {
	if current == RoleAdmin {
		return RoleAdmin
	}
	if semester >= SeniorSemester {
		return RoleSenior
	}
	return RoleStudent
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PrincipalFilter selects principals for admin listings.
type PrincipalFilter struct {
	Roles  []Role // empty matches every role
	Status *AccountStatus
	Limit  int
	Offset int
}
