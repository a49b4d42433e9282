// Package token issues and verifies the signed bearer tokens that identify
// API callers.
//
// A token is an HMAC-signed JWT carrying the user id (subject), username and
// role, with an expiry. The signature stops anyone from minting a token for
// an arbitrary user id, but the claims are still treated as a hint only: the
// authentication middleware re-reads the user record from the store on every
// request, so role changes and deletions take effect immediately.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voyago/voyago-api/internal/domain"
)

// Claims are the JWT claims embedded in every issued token.
// The user id travels in the registered Subject claim.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a single HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret. Tokens expire after ttl.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue creates a signed token for user.
func (m *Manager) Issue(user domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of raw and returns its claims.
// Any failure — malformed input, bad signature, expired token — is reported
// as domain.ErrUnauthorized; callers must not hit the store first.
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("token: parse: %w: %v", domain.ErrUnauthorized, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("token: parse: %w: invalid claims", domain.ErrUnauthorized)
	}
	return claims, nil
}
