package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarhub-portal/internal/adapters/http/middleware"
	"solarhub-portal/internal/adapters/http/routes"
	"solarhub-portal/internal/adapters/persistence/repositories"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/pkg/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func calcApp(t *testing.T, upstreamURL string) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode:   "dev",
		UserStore: config.StoreMemory,
		JWT:       config.JWTConfig{Secret: testSecret},
		Cookie:    config.CookieConfig{SameSite: "lax"},
		Calc:      config.CalcConfig{BaseURL: upstreamURL, TimeoutSeconds: 2},
	}

	repo, err := repositories.NewMemoryUserRepository()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, cfg, repo, audit.NewRing(100), nil)
	return app
}

func TestCalcEstimate_RelaysUpstream(t *testing.T) {
	var gotPath string
	var gotBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"payback_years":4.2}`))
	}))
	defer upstream.Close()

	app := calcApp(t, upstream.URL)
	cookie := login(t, app, "applicant@example.com", "password123")

	resp := postJSON(t, app, "/api/calc/estimate", `{"avg_load_kW":250}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/calculate", gotPath)
	require.JSONEq(t, `{"avg_load_kW":250}`, string(gotBody))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"payback_years":4.2}`, string(raw))
}

func TestCalcEstimateDetail_RelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calculate/detail", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"dod must be in (0, 1]"}`))
	}))
	defer upstream.Close()

	app := calcApp(t, upstream.URL)
	cookie := login(t, app, "applicant@example.com", "password123")

	resp := postJSON(t, app, "/api/calc/estimate/detail", `{"dod":2}`, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCalcEstimate_UpstreamUnreachable(t *testing.T) {
	app := calcApp(t, "http://127.0.0.1:1")
	cookie := login(t, app, "applicant@example.com", "password123")

	resp := postJSON(t, app, "/api/calc/estimate", `{}`, cookie)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCalcEstimate_RequiresSession(t *testing.T) {
	app := calcApp(t, "http://127.0.0.1:1")

	resp := postJSON(t, app, "/api/calc/estimate", `{}`)
	require.Equal(t, http.StatusFound, resp.StatusCode)
}
