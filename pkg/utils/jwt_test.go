package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

func testPermissions() entity.PermissionSet {
	return entity.PermissionSet{
		"orders":   {Create: true, Read: true},
		"products": {Read: true},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()
	branchID := uuid.New()

	token, err := m.GenerateAccessToken(userID, &branchID, "user@example.com", []string{"staff"}, testPermissions())
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.BranchID)
	assert.Equal(t, branchID, *claims.BranchID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, []string{"staff"}, claims.Roles)
	assert.NotEmpty(t, claims.ID) // jti is needed for revocation
	assert.True(t, claims.Permissions.Can("orders", entity.ActionCreate))
	assert.False(t, claims.Permissions.Can("orders", entity.ActionDelete))
	assert.False(t, claims.Permissions.Can("users", entity.ActionRead))
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), nil, "user@example.com", nil, nil)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), nil, "user@example.com", nil, nil)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRefreshTokenRejectedAsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	_, err := m.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}
