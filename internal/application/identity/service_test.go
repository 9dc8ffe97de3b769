package identity

import (
	"context"
	"testing"

	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserService_Create(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("ExistsByUsername", ctx, "paolo").Return(false, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := svc.Create(ctx, CreateUserRequest{
		Username:    "paolo",
		Password:    "password1",
		Role:        "alcafer",
		DisplayName: "Paolo Ferrero",
	})

	require.NoError(t, err)
	assert.Equal(t, "paolo", resp.Username)
	assert.Equal(t, "alcafer", resp.Role)
	assert.True(t, resp.Active)
	repo.AssertExpectations(t)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("ExistsByUsername", ctx, "paolo").Return(true, nil)

	_, err := svc.Create(ctx, CreateUserRequest{Username: "paolo", Password: "password1", Role: "admin"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestUserService_Update_Role(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := identity.NewUser("paolo", "password1", identity.RoleAlcafer)
	require.NoError(t, err)

	role := "admin"
	repo.On("FindByID", ctx, user.ID).Return(user, nil)
	repo.On("Save", ctx, user).Return(nil)

	resp, err := svc.Update(ctx, user.ID, UpdateUserRequest{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestUserService_ChangePassword_WrongOld(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := identity.NewUser("paolo", "password1", identity.RoleAlcafer)
	require.NoError(t, err)

	repo.On("FindByID", ctx, user.ID).Return(user, nil)

	err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "nuova-password2",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save")
}

func TestUserService_ResetPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := identity.NewUser("paolo", "password1", identity.RoleGabifer)
	require.NoError(t, err)

	repo.On("FindByID", ctx, user.ID).Return(user, nil)
	repo.On("Save", ctx, user).Return(nil)

	require.NoError(t, svc.ResetPassword(ctx, user.ID, ResetPasswordRequest{NewPassword: "reimpostata9"}))
	assert.True(t, user.VerifyPassword("reimpostata9"))
}
