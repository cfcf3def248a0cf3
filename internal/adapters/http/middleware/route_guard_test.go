package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const guardSecret = "test-secret-key"

func guardApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: guardSecret},
	}

	app := fiber.New()
	app.Use(RouteGuard(cfg))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/sign-in", ok)
	app.Get("/admin/x", ok)
	app.Get("/applicant/dashboard", ok)
	app.Get("/organization/reports", ok)
	app.Get("/calculate", ok)
	return app
}

func issueFor(t *testing.T, role domain.Role) string {
	t.Helper()
	tok, err := token.Issue(&domain.Identity{
		ID:    "1",
		Name:  "Test User",
		Email: string(role) + "@example.com",
		Role:  role,
	}, guardSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func request(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouteGuard_PublicRoutes(t *testing.T) {
	app := guardApp(t)

	for _, path := range []string{"/", "/sign-in"} {
		resp := request(t, app, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode, "path %s must be public", path)
	}
}

func TestRouteGuard_NoCookieRedirectsToSignIn(t *testing.T) {
	app := guardApp(t)

	resp := request(t, app, "/admin/x", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/sign-in", loc.Path)
	require.Equal(t, "/admin/x", loc.Query().Get("callbackUrl"))
}

func TestRouteGuard_InvalidTokenRedirectsToSignIn(t *testing.T) {
	app := guardApp(t)

	resp := request(t, app, "/admin/x", "not-a-token")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/sign-in", loc.Path)
	require.Equal(t, "/admin/x", loc.Query().Get("callbackUrl"))
}

func TestRouteGuard_ExpiredTokenRedirectsToSignIn(t *testing.T) {
	app := guardApp(t)

	tok, err := token.Issue(&domain.Identity{ID: "1", Role: domain.RoleAdmin}, guardSecret, -time.Second)
	require.NoError(t, err)

	resp := request(t, app, "/admin/x", tok)
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRouteGuard_ForeignTerritoryRedirectsToOwnDashboard(t *testing.T) {
	app := guardApp(t)

	resp := request(t, app, "/admin/x", issueFor(t, domain.RoleApplicant))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/applicant/dashboard", resp.Header.Get("Location"))

	resp = request(t, app, "/applicant/dashboard", issueFor(t, domain.RoleOrganization))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/organization/dashboard", resp.Header.Get("Location"))
}

func TestRouteGuard_OwnTerritoryAllowed(t *testing.T) {
	app := guardApp(t)

	resp := request(t, app, "/admin/x", issueFor(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, "/applicant/dashboard", issueFor(t, domain.RoleApplicant))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouteGuard_SharedAreaAllowedForAnyRole(t *testing.T) {
	app := guardApp(t)

	for _, role := range []domain.Role{domain.RoleApplicant, domain.RoleAdmin, domain.RoleOrganization} {
		resp := request(t, app, "/calculate", issueFor(t, role))
		require.Equal(t, http.StatusOK, resp.StatusCode, "role %s must reach shared area", role)
	}
}

func TestCurrentUser(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: guardSecret}}

	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		identity := CurrentUser(c, cfg.JWT.Secret)
		if identity == nil {
			return c.JSON(fiber.Map{"user": nil})
		}
		return c.JSON(fiber.Map{"user": identity.Email})
	})

	// No cookie: nil identity, not an error
	resp := request(t, app, "/whoami", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, "/whoami", issueFor(t, domain.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
