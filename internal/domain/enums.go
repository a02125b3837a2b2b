package domain

// Role is the authorization role of a principal.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleSenior  Role = "SENIOR"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleSenior, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a principal's account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusInactive  AccountStatus = "INACTIVE"
)

func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusSuspended, AccountStatusInactive:
		return true
	}
	return false
}

// RequestStatus is the state of a contribution request.
// PENDING is initial; APPROVED and REJECTED are terminal.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// ProjectStatus is the moderation state of a project.
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusApproved ProjectStatus = "APPROVED"
	ProjectStatusRejected ProjectStatus = "REJECTED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusApproved, ProjectStatusRejected:
		return true
	}
	return false
}

// AuditCategory groups audit action types.
type AuditCategory string

const (
	AuditCategoryAuth          AuditCategory = "AUTH"
	AuditCategoryCollaboration AuditCategory = "COLLABORATION"
	AuditCategoryProject       AuditCategory = "PROJECT"
	AuditCategoryAdmin         AuditCategory = "ADMIN"
)

func (c AuditCategory) String() string { return string(c) }

func (c AuditCategory) IsValid() bool {
	switch c {
	case AuditCategoryAuth, AuditCategoryCollaboration, AuditCategoryProject, AuditCategoryAdmin:
		return true
	}
	return false
}

// AuditAction identifies what happened in an audit entry.
type AuditAction string

const (
	AuditActionUserLogin        AuditAction = "USER_LOGIN"
	AuditActionUserLogout       AuditAction = "USER_LOGOUT"
	AuditActionUserRegistration AuditAction = "USER_REGISTRATION"
	AuditActionProfileUpdated   AuditAction = "PROFILE_UPDATED"

	AuditActionContributionCreated   AuditAction = "CONTRIBUTION_REQUEST_CREATED"
	AuditActionCollaborationApproved AuditAction = "COLLABORATION_REQUEST_APPROVED"
	AuditActionCollaborationRejected AuditAction = "COLLABORATION_REQUEST_REJECTED"

	AuditActionProjectCreated AuditAction = "PROJECT_CREATED"
	AuditActionProjectLiked   AuditAction = "PROJECT_LIKED"
	AuditActionProjectUnliked AuditAction = "PROJECT_UNLIKED"

	AuditActionRequestApproved AuditAction = "REQUEST_APPROVED"
	AuditActionRequestRejected AuditAction = "REQUEST_REJECTED"
	AuditActionProjectApproved AuditAction = "PROJECT_APPROVED"
	AuditActionProjectRejected AuditAction = "PROJECT_REJECTED"
	AuditActionProjectDeleted  AuditAction = "PROJECT_DELETED"
	AuditActionStudentUpdated  AuditAction = "STUDENT_UPDATED"
	AuditActionStudentDeleted  AuditAction = "STUDENT_DELETED"
	AuditActionLogsCleared     AuditAction = "ACTIVITY_LOGS_CLEARED"
	AuditActionOrphansCleaned  AuditAction = "ORPHANED_REQUESTS_CLEANED"
)

func (a AuditAction) String() string { return string(a) }

// AuditStatus records whether the audited action succeeded.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "SUCCESS"
	AuditStatusFailed  AuditStatus = "FAILED"
)

func (s AuditStatus) String() string { return string(s) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeUser                EntityType = "USER"
	EntityTypeProject             EntityType = "PROJECT"
	EntityTypeContributionRequest EntityType = "CONTRIBUTION_REQUEST"
)

func (e EntityType) String() string { return string(e) }
