package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.AppMode)
	require.True(t, cfg.IsDev())
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, StoreMemory, cfg.UserStore)
	require.Equal(t, "test-secret-key", cfg.JWT.Secret)
	// Dev mode serves over plain HTTP locally
	require.False(t, cfg.Cookie.Secure)
	require.Equal(t, "lax", cfg.Cookie.SameSite)
	require.Equal(t, 1000, cfg.Audit.Capacity)
}

func TestLoad_ProdSecureCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("APP_MODE", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.IsProd())
	require.True(t, cfg.Cookie.Secure)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidUserStore(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("USER_STORE", "postgres")

	_, err := Load()
	require.Error(t, err)
}

func TestGetAllowedOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.GetAllowedOrigins())
}
