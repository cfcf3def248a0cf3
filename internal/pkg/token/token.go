package token

import (
	"errors"
	"time"

	"solarhub-portal/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// SessionTTL is the lifetime of a session token
const SessionTTL = 24 * time.Hour

// Claims represents the session token claims
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity maps the claims back to an authenticated identity
func (c *Claims) Identity() *domain.Identity {
	return &domain.Identity{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  domain.Role(c.Role),
	}
}

// Issue signs a new session token for the given identity
func Issue(identity *domain.Identity, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "solarhub-portal",
			Subject:   identity.Email,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Verify validates a session token and returns its claims.
// Verification failure is an expected condition reported via the sentinel
// errors, never a server fault.
func Verify(tokenString, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
