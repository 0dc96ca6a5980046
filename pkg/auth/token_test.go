package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndValidate(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	token, err := tm.Issue("a@b.com", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	token, err := tm.Issue("a@b.com", 0)
	require.NoError(t, err)

	subject, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	// Negative ttl puts expiry in the past
	token, err := tm.Issue("a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	token, err := tm.Issue("a@b.com", time.Minute)
	require.NoError(t, err)

	// Flip one character of the payload
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = tm.Validate(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", "HS256", time.Hour)
	validator := NewTokenManager("secret-two", "HS256", time.Hour)

	token, err := issuer.Issue("a@b.com", time.Minute)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenMissingSubject(t *testing.T) {
	tm := NewTokenManager("test-secret", "HS256", time.Hour)

	// Hand-craft a valid signed token without a sub claim
	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsNonHMACAlgorithm(t *testing.T) {
	// Unknown or non-HMAC identifiers fall back to HS256 at construction
	tm := NewTokenManager("test-secret", "RS256", time.Hour)

	token, err := tm.Issue("a@b.com", time.Minute)
	require.NoError(t, err)

	subject, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}
