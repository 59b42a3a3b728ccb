package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func newAuthFixture(users ...*domain.User) (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            4,
	}, repo)
	return svc, repo
}

func TestRegisterCreatesCustomerAndIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture()

	user, token, expiresAt, err := svc.Register(context.Background(), "Jo Smith", "JO@Example.COM ", "hunter2hunter2", "Acme")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "jo@example.com", user.Email)
	assert.True(t, user.Active)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "short", "")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	_, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Jo Again", "jo@example.com", "hunter2hunter2", "")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestLoginVerifiesCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	registered, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "jo@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, _, err = svc.Login(context.Background(), "jo@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)

	_, _, _, err = svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc, repo := newAuthFixture()
	user, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	user.Active = false
	require.NoError(t, repo.Update(context.Background(), user))

	_, _, _, err = svc.Login(context.Background(), "jo@example.com", "hunter2hunter2")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	svc, _ := newAuthFixture(adminUser, employeeUser)

	_, err := svc.CreateUser(context.Background(), employeeUser, UserCreateInput{
		Name:     "New Agent",
		Email:    "agent@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleEmployee,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	created, err := svc.CreateUser(context.Background(), adminUser, UserCreateInput{
		Name:     "New Agent",
		Email:    "agent@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, created.Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthFixture(adminUser)

	_, err := svc.CreateUser(context.Background(), adminUser, UserCreateInput{
		Name:     "X",
		Email:    "x@example.com",
		Password: "hunter2hunter2",
		Role:     "SUPERUSER",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUpdateUserTogglesRoleAndActivity(t *testing.T) {
	svc, _ := newAuthFixture(adminUser)
	created, err := svc.CreateUser(context.Background(), adminUser, UserCreateInput{
		Name:     "Agent",
		Email:    "agent@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleCustomer,
	})
	require.NoError(t, err)

	role := domain.RoleEmployee
	active := false
	updated, err := svc.UpdateUser(context.Background(), adminUser, created.ID, UserUpdateInput{
		Role:   &role,
		Active: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, updated.Role)
	assert.False(t, updated.Active)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	user, _, _, err := svc.Register(context.Background(), "Jo", "jo@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	newPassword := "an-even-longer-secret"
	_, err = svc.UpdateProfile(context.Background(), user, ProfileUpdateInput{Password: &newPassword})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "jo@example.com", newPassword)
	require.NoError(t, err)
	_, _, _, err = svc.Login(context.Background(), "jo@example.com", "hunter2hunter2")
	require.Error(t, err)
}
