package middleware

import (
	"net/url"
	"strings"

	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// publicPrefixes are route prefixes reachable without a session.
// "/" is handled as an exact match.
var publicPrefixes = []string{
	"/sign-in",
	"/sign-up",
	"/api/auth",
	"/health",
	"/swagger",
}

// roleTerritories maps each role to the path prefix it owns. A role may
// only navigate inside its own territory or the shared/public area.
var roleTerritories = []struct {
	role   domain.Role
	prefix string
}{
	{domain.RoleAdmin, "/admin"},
	{domain.RoleOrganization, "/organization"},
	{domain.RoleApplicant, "/applicant"},
}

// RouteGuard intercepts every request and applies the session and
// role-territory policy. The public-route check always runs before any
// token validation so an invalid token can never loop the sign-in page.
func RouteGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if isPublicRoute(path) {
			return c.Next()
		}

		tok := c.Cookies(CookieName)
		if tok == "" {
			return redirectToSignIn(c, path)
		}

		claims, err := token.Verify(tok, cfg.JWT.Secret)
		if err != nil {
			return redirectToSignIn(c, path)
		}

		role := domain.Role(claims.Role)
		for _, t := range roleTerritories {
			if strings.HasPrefix(path, t.prefix) && role != t.role {
				return c.Redirect(role.DashboardPath(), fiber.StatusFound)
			}
		}

		c.Locals(identityKey, claims.Identity())
		return c.Next()
	}
}

// isPublicRoute checks the path against the public set
func isPublicRoute(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// redirectToSignIn sends the caller to the sign-in page, carrying the
// original path so the client can return after authentication
func redirectToSignIn(c *fiber.Ctx, path string) error {
	signIn := url.URL{
		Path:     "/sign-in",
		RawQuery: url.Values{"callbackUrl": {path}}.Encode(),
	}
	return c.Redirect(signIn.String(), fiber.StatusFound)
}
