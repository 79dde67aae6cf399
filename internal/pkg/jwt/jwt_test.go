package jwt_test

import (
	"testing"
	"time"

	"tabaro3-api/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
)

const (
	accessSecret  = "test-access-secret"
	refreshSecret = "test-refresh-secret"
)

// TestAccessTokenRoundTrip verifies the claims survive generate-then-validate.
func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := jwt.GenerateAccessToken(7, "donor1", true, accessSecret, 15)
	assert.NoError(t, err)

	claims, err := jwt.ValidateAccessToken(token, accessSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "donor1", claims.Username)
	assert.True(t, claims.IsAdmin)
}

// TestAccessTokenWrongSecret verifies a token signed with another secret is
// rejected.
func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := jwt.GenerateAccessToken(7, "donor1", false, accessSecret, 15)
	assert.NoError(t, err)

	_, err = jwt.ValidateAccessToken(token, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

// TestAccessTokenExpired verifies an expired token surfaces ErrTokenExpired.
func TestAccessTokenExpired(t *testing.T) {
	token, err := jwt.GenerateAccessToken(7, "donor1", false, accessSecret, -1)
	assert.NoError(t, err)

	_, err = jwt.ValidateAccessToken(token, accessSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// TestRefreshTokenRoundTrip verifies refresh claims survive the round trip.
func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := jwt.GenerateRefreshToken(7, "token-id-1", refreshSecret, 7)
	assert.NoError(t, err)

	claims, err := jwt.ValidateRefreshToken(token, refreshSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-id-1", claims.TokenID)
}

// TestRefreshTokenNotAcceptedAsAccess verifies the two token kinds are not
// interchangeable when secrets differ.
func TestRefreshTokenNotAcceptedAsAccess(t *testing.T) {
	token, err := jwt.GenerateRefreshToken(7, "token-id-1", refreshSecret, 7)
	assert.NoError(t, err)

	_, err = jwt.ValidateAccessToken(token, accessSecret)
	assert.Error(t, err)
}

// TestValidateGarbage verifies arbitrary strings are rejected.
func TestValidateGarbage(t *testing.T) {
	_, err := jwt.ValidateAccessToken("definitely not a jwt", accessSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)

	_, err = jwt.ValidateRefreshToken("", refreshSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

// TestGetExpiryTime verifies the helper lands in the expected window.
func TestGetExpiryTime(t *testing.T) {
	expiry := jwt.GetExpiryTime(7)

	assert.True(t, expiry.After(time.Now().Add(6*24*time.Hour)))
	assert.True(t, expiry.Before(time.Now().Add(8*24*time.Hour)))
}
