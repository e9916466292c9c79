package alloweduser

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-chms/internal/accesspolicy"
	alloweduserrors "go-chms/internal/alloweduser/errors"
	"go-chms/internal/audit"
	"go-chms/internal/shared/contextutil"
)

//go:generate mockgen -source=alloweduser_service.go -destination=mock/alloweduser_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]AllowedUser, error)
	Add(ctx context.Context, req AddUserRequest) (*AllowedUser, error)
	UpdateRole(ctx context.Context, email string, req UpdateRoleRequest) (*AllowedUser, error)
	Remove(ctx context.Context, email string) error

	// RoleByEmail backs per-request role resolution. The bool reports whether
	// the email is on the access list at all.
	RoleByEmail(ctx context.Context, email string) (string, bool, error)
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder) Service {
	return &service{
		repo:     repo,
		recorder: recorder,
		logger:   zap.L().Named("alloweduser_service"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validRole(role string) bool {
	switch accesspolicy.Role(role) {
	case accesspolicy.RoleUser, accesspolicy.RoleAdmin:
		return true
	}
	return false
}

func (s *service) List(ctx context.Context) ([]AllowedUser, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Add(ctx context.Context, req AddUserRequest) (*AllowedUser, error) {
	email := normalizeEmail(req.Email)

	role := req.Role
	if role == "" {
		role = string(accesspolicy.RoleUser)
	}
	if !validRole(role) {
		return nil, alloweduserrors.ErrUnknownRole
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alloweduserrors.ErrUserExists
	}

	user := &AllowedUser{
		Email:   email,
		Role:    role,
		AddedBy: contextutil.GetUserEmail(ctx),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.UserAdded{Email: email, Role: role}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return user, nil
}

func (s *service) UpdateRole(ctx context.Context, email string, req UpdateRoleRequest) (*AllowedUser, error) {
	email = normalizeEmail(email)
	if !validRole(req.Role) {
		return nil, alloweduserrors.ErrUnknownRole
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, alloweduserrors.ErrUserNotFound
	}
	if user.Role == req.Role {
		return user, nil
	}

	updatedBy := contextutil.GetUserEmail(ctx)
	if _, err := s.repo.UpdateRole(ctx, email, req.Role, updatedBy); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.UserRoleUpdated{
		Email:   email,
		OldRole: user.Role,
		NewRole: req.Role,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	user.Role = req.Role
	user.UpdatedBy = updatedBy
	return user, nil
}

func (s *service) RoleByEmail(ctx context.Context, email string) (string, bool, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}
	return user.Role, true, nil
}

func (s *service) Remove(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if email == normalizeEmail(contextutil.GetUserEmail(ctx)) {
		return alloweduserrors.ErrCannotRemoveSelf
	}

	removed, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if removed == 0 {
		return alloweduserrors.ErrUserNotFound
	}

	if err := s.recorder.Record(ctx, audit.UserRemoved{Email: email}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return nil
}
