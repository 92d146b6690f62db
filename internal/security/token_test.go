package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60*24*7, 30)

	token, err := tm.GenerateAccessToken("user-1", "staff@example.com")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_WrongType(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60*24*7, 30)

	refresh, err := tm.GenerateRefreshToken("user-1", "staff@example.com")
	assert.NoError(t, err)

	// A refresh token must not pass where an access token is expected.
	_, err = tm.ValidateToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	reset, err := tm.GeneratePasswordResetToken("user-1", "staff@example.com")
	assert.NoError(t, err)
	_, err = tm.ValidateToken(reset, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenManager_Expired(t *testing.T) {
	// Zero-minute expiry yields a token that is already expired.
	tm := NewTokenManager(testSecret, 0, 0, 0)

	token, err := tm.GenerateAccessToken("user-1", "staff@example.com")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60, 30)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60, 60, 30)

	token, err := tm.GenerateAccessToken("user-1", "staff@example.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60, 30)
	_, err := tm.ValidateToken("not-a-jwt", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
