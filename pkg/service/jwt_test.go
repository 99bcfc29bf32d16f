package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokens("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestJWTService_RejectsForeignAndExpiredTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	other := NewJWTService("different-secret", time.Hour, 24*time.Hour)
	access, _, err := other.GenerateTokens("user-42")
	require.NoError(t, err)
	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	expiredSvc := NewJWTService("test-secret", -time.Minute, -time.Minute)
	access, _, err = expiredSvc.GenerateTokens("user-42")
	require.NoError(t, err)
	_, err = expiredSvc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}
