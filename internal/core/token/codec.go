// Package token implements the session token codec: a signed, time-limited,
// stateless credential carrying a user's identity and role. Tokens are not
// persisted server-side; validity is determined entirely by signature and
// expiry, so a token remains usable until it expires.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// DefaultTTL matches the session cookie lifetime.
const DefaultTTL = 30 * 24 * time.Hour

// Claims is the JWT payload. Subject carries the user id.
type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name,omitempty"`
	Role  domain.Role `json:"role"`
	Image string      `json:"image,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, valid for the codec's TTL.
func (c *Codec) Issue(id *domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		Role:  id.Role,
		Image: id.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the decoded identity, or
// nil on any failure (bad signature, expired, malformed, unknown role).
// It never surfaces the failure cause to callers.
func (c *Codec) Verify(raw string) *domain.Identity {
	if raw == "" {
		return nil
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || !claims.Role.Valid() {
		return nil
	}

	return &domain.Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
		Image: claims.Image,
	}
}
