package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxContributionMessageLen caps the free-text message of a request.
const MaxContributionMessageLen = 500

// ContributionRequest is a non-owner's request for download access to a project.
type ContributionRequest struct {
	ID          int64
	ProjectID   int64
	RequesterID int64
	Message     string
	Status      RequestStatus
	RequestedAt time.Time
	DecidedAt   *time.Time
	DecidedBy   *int64
}

// CanTransitionTo reports whether the request may move to target.
// Only PENDING requests move, and only into a terminal state.
func (r *ContributionRequest) CanTransitionTo(target RequestStatus) bool {
	return r.Status == RequestStatusPending && target.IsTerminal()
}

// AccessStatus is the derived download-access state of a principal for a project.
type AccessStatus string

const (
	AccessOwner     AccessStatus = "owner"
	AccessApproved  AccessStatus = "approved"
	AccessPending   AccessStatus = "pending"
	AccessRejected  AccessStatus = "rejected"
	AccessNoRequest AccessStatus = "no_request"
)

// AccessDecision is computed on every check and never persisted.
type AccessDecision struct {
	Status    AccessStatus
	HasAccess bool
	RequestID *int64
	Message   string
}

// DecideAccess derives the download-access decision.
// latest is the most recent request of the principal for the project, or nil.
func DecideAccess(isOwner bool, latest *ContributionRequest) AccessDecision {
	if isOwner {
		return AccessDecision{Status: AccessOwner, HasAccess: true, Message: "You are the project owner"}
	}
	if latest == nil {
		return AccessDecision{Status: AccessNoRequest, Message: "No download request submitted"}
	}

	id := latest.ID
	d := AccessDecision{
		Status:    AccessStatus(strings.ToLower(latest.Status.String())),
		RequestID: &id,
	}
	switch latest.Status {
	case RequestStatusApproved:
		d.HasAccess = true
		d.Message = "Download access granted"
	case RequestStatusPending:
		d.Message = "Download request is pending approval"
	case RequestStatusRejected:
		d.Message = "Download request was rejected"
	default:
		d.Message = fmt.Sprintf("Download request is %s", d.Status)
	}
	return d
}

// RequestFilter selects contribution requests. Nil fields do not filter.
// OwnerID matches requests on projects owned by that principal.
// A zero Limit returns every matching request.
type RequestFilter struct {
	ProjectID   *int64
	RequesterID *int64
	OwnerID     *int64
	Status      *RequestStatus
	Limit       int
	Offset      int
}
