package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActorSnapshot is the denormalized identity stored with an audit entry.
type ActorSnapshot struct {
	ID       *int64
	Email    string
	FullName string
	Role     Role
}

// ActorFromPrincipal snapshots p. A nil principal yields an anonymous actor;
// a principal without an id (e.g. an unknown login email) keeps only its email.
func ActorFromPrincipal(p *Principal) ActorSnapshot {
	if p == nil {
		return ActorSnapshot{Email: "anonymous"}
	}
	a := ActorSnapshot{Email: p.Email, FullName: p.FullName, Role: p.Role}
	if p.ID != 0 {
		id := p.ID
		a.ID = &id
	}
	return a
}

// AuditEntry is an immutable record of a security or workflow event.
type AuditEntry struct {
	ID           uuid.UUID
	Actor        ActorSnapshot
	Action       AuditAction
	Category     AuditCategory
	Description  string
	EntityType   *EntityType
	EntityID     *int64
	OldValue     *string
	NewValue     *string
	IPAddress    string
	UserAgent    string
	Status       AuditStatus
	ErrorMessage *string
	CreatedAt    time.Time
}

// AuditFilter selects audit entries for admin listings.
type AuditFilter struct {
	ActorEmail string
	Category   *AuditCategory
	From       *time.Time
	To         *time.Time
	Search     string
	Limit      int
	Offset     int
}

// ActorActivity is a per-actor entry count.
type ActorActivity struct {
	Email    string
	FullName string
	Count    int64
}

// AuditStats aggregates audit activity over a trailing window.
type AuditStats struct {
	Days            int
	Total           int64
	ByCategory      map[AuditCategory]int64
	MostActiveUsers []ActorActivity
}

// AuditEvent is what an operation reports. The recorder completes it into an
// AuditEntry with the actor, client details, id and timestamp.
type AuditEvent struct {
	Action      AuditAction
	Category    AuditCategory
	Description string
	EntityType  *EntityType
	EntityID    *int64
	OldValue    *string
	NewValue    *string
	// Actor overrides the principal of the context, e.g. on login.
	Actor *Principal
	// Err marks the event FAILED with its message.
	Err error
}

// On returns a copy of ev referring to the given entity.
func (ev AuditEvent) On(t EntityType, id int64) AuditEvent {
	ev.EntityType = &t
	ev.EntityID = &id
	return ev
}

// Change returns a copy of ev carrying the old and new values.
func (ev AuditEvent) Change(oldValue, newValue string) AuditEvent {
	ev.OldValue = &oldValue
	ev.NewValue = &newValue
	return ev
}
