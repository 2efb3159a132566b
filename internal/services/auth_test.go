package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestEnsureAdminCreatesAccountOnce(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "owner", "correct-horse"))

	// A second start with a different configured password must not clobber
	// the stored credentials.
	require.NoError(t, svc.EnsureAdmin(ctx, "owner", "different-password"))

	_, _, err := svc.Login(ctx, LoginRequest{Username: "owner", Password: "correct-horse"})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "owner", "correct-horse"))

	_, _, err := svc.Login(ctx, LoginRequest{Username: "owner", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginRequest{Username: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesValidSession(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "owner", "correct-horse"))

	token, expiresAt, err := svc.Login(ctx, LoginRequest{Username: "owner", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", session.Username)
	assert.Equal(t, expiresAt.Unix(), session.ExpiresAt)
}

func TestValidateSessionRejectsForgedToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	other := NewAuthService(newTestDB(t), "different-secret")
	ctx := context.Background()

	require.NoError(t, other.EnsureAdmin(ctx, "owner", "correct-horse"))
	token, _, err := other.Login(ctx, LoginRequest{Username: "owner", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "owner", "correct-horse"))

	err := svc.ChangePassword(ctx, "owner", ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password-1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, "owner", ChangePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)

	err = svc.ChangePassword(ctx, "owner", ChangePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "new-password-1",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{Username: "owner", Password: "new-password-1"})
	assert.NoError(t, err)
}
