package middleware

import (
	"time"

	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie key
const CookieName = "auth-token"

// identityKey is the Locals key under which the route guard stashes the
// verified identity
const identityKey = "identity"

// AttachSessionCookie sets the session cookie carrying the token
func AttachSessionCookie(c *fiber.Ctx, tok string, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(token.SessionTTL.Seconds()),
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}

// CurrentUser reconstructs the authenticated identity from the request's
// session cookie. Returns nil for any missing, invalid or expired session;
// "no session" is the expected unauthenticated value, not an error.
func CurrentUser(c *fiber.Ctx, secret string) *domain.Identity {
	if identity, ok := c.Locals(identityKey).(*domain.Identity); ok {
		return identity
	}

	tok := c.Cookies(CookieName)
	if tok == "" {
		return nil
	}

	claims, err := token.Verify(tok, secret)
	if err != nil {
		return nil
	}

	return claims.Identity()
}
