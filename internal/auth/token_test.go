package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 15)

	token, expiresAt, err := tm.GenerateToken("user-42", domain.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 15)
	other := NewTokenManager("secret-b", 15)

	token, _, err := tm.GenerateToken("user-42", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 15)

	_, err := tm.ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 4)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hash)

	require.NoError(t, ComparePassword(hash, "hunter2hunter2"))
	require.Error(t, ComparePassword(hash, "wrong"))
}
