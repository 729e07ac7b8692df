package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sossut/adp2/internal/config"
	"github.com/sossut/adp2/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "admin",
		AdminPassword: "hunter2",
	})
}

func TestLoginAdmin(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.LoginAdmin("admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginAdminBadCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.LoginAdmin("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginAdmin("root", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOwnerTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.GenerateOwnerToken("owner-1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
	assert.Equal(t, model.RoleOwner, claims.Role)
}

func TestValidateTokenRejectsGarbageAndForeignSignatures(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(&config.Config{JWTSecret: "other-secret"})
	token, err := other.GenerateOwnerToken("owner-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
