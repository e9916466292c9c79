package alloweduser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	alloweduserrors "go-chms/internal/alloweduser/errors"
	"go-chms/internal/audit"
	"go-chms/internal/shared/contextutil"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, u *AllowedUser) error
	findAllFn     func(ctx context.Context) ([]AllowedUser, error)
	findByEmailFn func(ctx context.Context, email string) (*AllowedUser, error)
	updateRoleFn  func(ctx context.Context, email, role, updatedBy string) (int64, error)
	deleteFn      func(ctx context.Context, email string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, u *AllowedUser) error {
	return f.createFn(ctx, u)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]AllowedUser, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*AllowedUser, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeRepo) UpdateRole(ctx context.Context, email, role, updatedBy string) (int64, error) {
	if f.updateRoleFn == nil {
		return 1, nil
	}
	return f.updateRoleFn(ctx, email, role, updatedBy)
}

func (f *fakeRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return f.deleteFn(ctx, email)
}

type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Record(ctx context.Context, ev audit.Event) error {
	f.events = append(f.events, ev)
	return nil
}

func adminCtx() context.Context {
	return contextutil.WithUserEmail(context.Background(), "admin@example.com")
}

func TestAddLowercasesEmail(t *testing.T) {
	var created *AllowedUser
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*AllowedUser, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, u *AllowedUser) error {
			created = u
			return nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, recorder)

	user, err := svc.Add(adminCtx(), AddUserRequest{Email: "  New.User@Example.COM "})

	assert.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, "user", created.Role)
	assert.Equal(t, "admin@example.com", created.AddedBy)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "User Added", recorder.events[0].Action())
}

func TestAddRejectsExisting(t *testing.T) {
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*AllowedUser, error) {
			return &AllowedUser{Email: email}, nil
		},
	}
	svc := NewService(repo, &fakeRecorder{})

	_, err := svc.Add(adminCtx(), AddUserRequest{Email: "existing@example.com"})

	assert.ErrorIs(t, err, alloweduserrors.ErrUserExists)
}

func TestAddRejectsUnknownRole(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRecorder{})

	_, err := svc.Add(adminCtx(), AddUserRequest{Email: "a@example.com", Role: "owner"})

	assert.ErrorIs(t, err, alloweduserrors.ErrUnknownRole)
}

func TestUpdateRoleIdempotent(t *testing.T) {
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*AllowedUser, error) {
			return &AllowedUser{Email: email, Role: "admin"}, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, recorder)

	user, err := svc.UpdateRole(adminCtx(), "someone@example.com", UpdateRoleRequest{Role: "admin"})

	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.Empty(t, recorder.events)
}

func TestUpdateRoleAudits(t *testing.T) {
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*AllowedUser, error) {
			return &AllowedUser{Email: email, Role: "user"}, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, recorder)

	user, err := svc.UpdateRole(adminCtx(), "Someone@Example.com", UpdateRoleRequest{Role: "admin"})

	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "User Role Updated", recorder.events[0].Action())
}

func TestUpdateRoleNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByEmailFn: func(ctx context.Context, email string) (*AllowedUser, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeRecorder{})

	_, err := svc.UpdateRole(adminCtx(), "ghost@example.com", UpdateRoleRequest{Role: "admin"})

	assert.ErrorIs(t, err, alloweduserrors.ErrUserNotFound)
}

func TestRemoveSelfForbidden(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRecorder{})

	err := svc.Remove(adminCtx(), "Admin@Example.com")

	assert.ErrorIs(t, err, alloweduserrors.ErrCannotRemoveSelf)
}

func TestRemoveNotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, email string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewService(repo, &fakeRecorder{})

	err := svc.Remove(adminCtx(), "ghost@example.com")

	assert.ErrorIs(t, err, alloweduserrors.ErrUserNotFound)
}

func TestRemoveAudits(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, email string) (int64, error) {
			return 1, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, recorder)

	err := svc.Remove(adminCtx(), "someone@example.com")

	assert.NoError(t, err)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "User Removed", recorder.events[0].Action())
}
