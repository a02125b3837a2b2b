package rest

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/transport/dataloader"
)

// ---------------------------------------------------------------------------
// Principals
// ---------------------------------------------------------------------------

type principalView struct {
	ID            int64      `json:"id"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	RollNumber    string     `json:"rollNumber"`
	Course        string     `json:"course"`
	Semester      int        `json:"semester"`
	Role          string     `json:"role"`
	AccountStatus string     `json:"accountStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

func toPrincipalView(p *domain.Principal) principalView {
	return principalView{
		ID:            p.ID,
		FullName:      p.FullName,
		Email:         p.Email,
		RollNumber:    p.RollNumber,
		Course:        p.Course,
		Semester:      p.Semester,
		Role:          p.Role.String(),
		AccountStatus: p.Status.String(),
		CreatedAt:     p.CreatedAt,
		LastLoginAt:   p.LastLoginAt,
	}
}

func toPrincipalViews(ps []domain.Principal) []principalView {
	out := make([]principalView, len(ps))
	for i := range ps {
		out[i] = toPrincipalView(&ps[i])
	}
	return out
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type ownerView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type projectView struct {
	ID          int64      `json:"id"`
	ProjectName string     `json:"projectName"`
	Description string     `json:"description"`
	TechStack   string     `json:"techStack"`
	CodeLink    string     `json:"codeLink,omitempty"`
	Status      string     `json:"status"`
	ViewCount   int64      `json:"viewCount"`
	LikeCount   int64      `json:"likeCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	Owner       *ownerView `json:"owner,omitempty"`
}

// projectViews converts projects and resolves their owners in one batch.
func projectViews(ctx context.Context, ps []domain.Project) ([]projectView, error) {
	loaders := dataloader.FromContext(ctx)

	owners := make([]func() (*domain.Principal, error), len(ps))
	for i := range ps {
		owners[i] = loaders.PrincipalByID.Load(ctx, ps[i].OwnerID)
	}

	out := make([]projectView, len(ps))
	for i := range ps {
		owner, err := owners[i]()
		if err != nil {
			return nil, err
		}
		out[i] = toProjectView(&ps[i], owner)
	}
	return out, nil
}

func projectViewOf(ctx context.Context, p *domain.Project) (projectView, error) {
	views, err := projectViews(ctx, []domain.Project{*p})
	if err != nil {
		return projectView{}, err
	}
	return views[0], nil
}

func toProjectView(p *domain.Project, owner *domain.Principal) projectView {
	v := projectView{
		ID:          p.ID,
		ProjectName: p.Name,
		Description: p.Description,
		TechStack:   p.TechStack,
		CodeLink:    p.RepoURL,
		Status:      p.Status.String(),
		ViewCount:   p.ViewCount,
		LikeCount:   p.LikeCount,
		CreatedAt:   p.CreatedAt,
	}
	if owner != nil {
		v.Owner = &ownerView{ID: owner.ID, Name: owner.FullName, Email: owner.Email, Role: owner.Role.String()}
	}
	return v
}

// ---------------------------------------------------------------------------
// Contribution requests
// ---------------------------------------------------------------------------

type requestView struct {
	ID               int64      `json:"id"`
	ProjectID        int64      `json:"projectId"`
	ProjectName      string     `json:"projectName"`
	RequestedByID    int64      `json:"requestedById"`
	RequestedByName  string     `json:"requestedByName"`
	RequestedByEmail string     `json:"requestedByEmail"`
	Message          string     `json:"message"`
	Status           string     `json:"status"`
	RequestedAt      time.Time  `json:"requestedAt"`
	DecidedAt        *time.Time `json:"decidedAt,omitempty"`
}

// requestViews converts requests, resolving project and requester names in batches.
func requestViews(ctx context.Context, rs []domain.ContributionRequest) ([]requestView, error) {
	loaders := dataloader.FromContext(ctx)

	projects := make([]func() (*domain.Project, error), len(rs))
	requesters := make([]func() (*domain.Principal, error), len(rs))
	for i := range rs {
		projects[i] = loaders.ProjectByID.Load(ctx, rs[i].ProjectID)
		requesters[i] = loaders.PrincipalByID.Load(ctx, rs[i].RequesterID)
	}

	out := make([]requestView, len(rs))
	for i := range rs {
		project, err := projects[i]()
		if err != nil {
			return nil, err
		}
		requester, err := requesters[i]()
		if err != nil {
			return nil, err
		}

		r := &rs[i]
		v := requestView{
			ID:            r.ID,
			ProjectID:     r.ProjectID,
			RequestedByID: r.RequesterID,
			Message:       r.Message,
			Status:        r.Status.String(),
			RequestedAt:   r.RequestedAt,
			DecidedAt:     r.DecidedAt,
		}
		if project != nil {
			v.ProjectName = project.Name
		}
		if requester != nil {
			v.RequestedByName = requester.FullName
			v.RequestedByEmail = requester.Email
		}
		out[i] = v
	}
	return out, nil
}

func requestViewOf(ctx context.Context, r *domain.ContributionRequest) (requestView, error) {
	views, err := requestViews(ctx, []domain.ContributionRequest{*r})
	if err != nil {
		return requestView{}, err
	}
	return views[0], nil
}

// ---------------------------------------------------------------------------
// Audit entries
// ---------------------------------------------------------------------------

type auditEntryView struct {
	ID             string  `json:"id"`
	UserEmail      string  `json:"userEmail"`
	UserFullName   string  `json:"userFullName,omitempty"`
	UserRole       string  `json:"userRole,omitempty"`
	ActionType     string  `json:"actionType"`
	ActionCategory string  `json:"actionCategory"`
	Description    string  `json:"description"`
	EntityType     *string `json:"entityType,omitempty"`
	EntityID       *int64  `json:"entityId,omitempty"`
	OldValue       *string `json:"oldValue,omitempty"`
	NewValue       *string `json:"newValue,omitempty"`
	IPAddress      string  `json:"ipAddress,omitempty"`
	UserAgent      string  `json:"userAgent,omitempty"`
	Status         string  `json:"status"`
	ErrorMessage   *string `json:"errorMessage,omitempty"`
	Timestamp      string  `json:"timestamp"`
	TimeAgo        string  `json:"timeAgo"`
}

func toAuditEntryViews(entries []domain.AuditEntry) []auditEntryView {
	out := make([]auditEntryView, len(entries))
	for i := range entries {
		e := &entries[i]
		v := auditEntryView{
			ID:             e.ID.String(),
			UserEmail:      e.Actor.Email,
			UserFullName:   e.Actor.FullName,
			UserRole:       string(e.Actor.Role),
			ActionType:     e.Action.String(),
			ActionCategory: e.Category.String(),
			Description:    e.Description,
			EntityID:       e.EntityID,
			OldValue:       e.OldValue,
			NewValue:       e.NewValue,
			IPAddress:      e.IPAddress,
			UserAgent:      e.UserAgent,
			Status:         e.Status.String(),
			ErrorMessage:   e.ErrorMessage,
			Timestamp:      e.CreatedAt.UTC().Format(time.RFC3339),
			TimeAgo:        humanize.Time(e.CreatedAt),
		}
		if e.EntityType != nil {
			t := e.EntityType.String()
			v.EntityType = &t
		}
		out[i] = v
	}
	return out
}
