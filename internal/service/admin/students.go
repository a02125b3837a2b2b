package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-collab-backend/internal/authz"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

// Paging limits of admin listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// StudentList is one page of non-admin principals.
type StudentList struct {
	Items []domain.Principal
	Total int
	Page  int
	Size  int
}

// ListStudents returns STUDENT and SENIOR principals, optionally filtered by account status.
func (s *Service) ListStudents(ctx context.Context, status string, page, size int) (*StudentList, error) {
	if _, err := authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if status != "" && !domain.AccountStatus(status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 0"})
	}
	if size < 0 || size > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be between 1 and 100"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if size == 0 {
		size = DefaultPageSize
	}

	f := domain.PrincipalFilter{
		Roles:  []domain.Role{domain.RoleStudent, domain.RoleSenior},
		Limit:  size,
		Offset: page * size,
	}
	if status != "" {
		st := domain.AccountStatus(status)
		f.Status = &st
	}

	items, total, err := s.users.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("admin.ListStudents: %w", err)
	}
	return &StudentList{Items: items, Total: total, Page: page, Size: size}, nil
}

// UpdateStudentStatus activates, suspends or deactivates a student account.
func (s *Service) UpdateStudentStatus(ctx context.Context, id int64, status string) (*domain.Principal, error) {
	admin, err := authz.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	target := domain.AccountStatus(status)
	if !target.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	current, err := s.student(ctx, admin, id)
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateStudentStatus: %w", err)
	}

	updated, err := s.users.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateStudentStatus: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionStudentUpdated,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Changed status of %s to %s", updated.Email, target),
	}.On(domain.EntityTypeUser, id).Change(string(current.Status), string(target)))

	s.log.InfoContext(ctx, "student status updated",
		slog.Int64("student_id", id),
		slog.String("status", string(target)),
	)
	return updated, nil
}

// DeleteStudent removes a student together with everything they own,
// including their audit trail.
func (s *Service) DeleteStudent(ctx context.Context, id int64) error {
	admin, err := authz.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	target, err := s.student(ctx, admin, id)
	if err != nil {
		return fmt.Errorf("admin.DeleteStudent: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("admin.DeleteStudent: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		Action:      domain.AuditActionStudentDeleted,
		Category:    domain.AuditCategoryAdmin,
		Description: fmt.Sprintf("Deleted student %s (%s)", target.FullName, target.Email),
	}.On(domain.EntityTypeUser, id))

	s.log.InfoContext(ctx, "student deleted", slog.Int64("student_id", id))
	return nil
}

// student loads a manageable principal: not the caller and not another admin.
func (s *Service) student(ctx context.Context, admin *domain.Principal, id int64) (*domain.Principal, error) {
	if id == admin.ID {
		return nil, domain.NewValidationError("id", "cannot manage your own account")
	}
	p, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsAdmin() {
		return nil, domain.NewValidationError("id", "target is an administrator")
	}
	return p, nil
}
