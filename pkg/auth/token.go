package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: malformed encoding,
// bad signature, elapsed expiry, missing subject. Callers cannot
// distinguish which check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates stateless HMAC-signed bearer tokens.
// Expiry is embedded in the token, so no revocation store exists; a token
// stays valid until it expires or the secret changes.
type TokenManager struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewTokenManager builds a manager for the given HMAC algorithm
// identifier (HS256/HS384/HS512). Unknown identifiers fall back to HS256.
func NewTokenManager(secret, algorithm string, defaultTTL time.Duration) *TokenManager {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &TokenManager{
		secret:     []byte(secret),
		method:     method,
		defaultTTL: defaultTTL,
	}
}

// Issue signs a token carrying subject with expiry now+ttl. A zero ttl
// means the configured default lifetime.
func (m *TokenManager) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = m.defaultTTL
	}
	now := time.Now()
	token := jwt.NewWithClaims(m.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the subject.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
