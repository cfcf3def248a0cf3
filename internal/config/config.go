package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// User store backends
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	UserStore string
	Database  DatabaseConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Calc      CalcConfig
	Audit     AuditConfig
}

// DatabaseConfig holds database configuration (mysql user store)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret string
}

// CookieConfig holds session cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// CalcConfig holds the external calculation service configuration
type CalcConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// AuditConfig holds audit log configuration
type AuditConfig struct {
	Capacity int
}

// Load reads configuration from .env file and environment variables.
// JWT_SECRET is mandatory: the process must refuse to start without it.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required and has no default")
	}

	userStore := strings.TrimSpace(getEnv("USER_STORE", StoreMemory))
	if userStore != StoreMemory && userStore != StoreMySQL {
		return nil, fmt.Errorf("invalid USER_STORE: '%s' (must be 'memory' or 'mysql')", userStore)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		UserStore: userStore,
		Database:  loadDatabaseConfig(),
		JWT:       JWTConfig{Secret: secret},
		Cookie:    loadCookieConfig(appMode),
		Calc:      loadCalcConfig(),
		Audit:     loadAuditConfig(),
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORE: %s]", appMode, userStore)
	return config, nil
}

// loadDatabaseConfig loads database config for the mysql user store
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "solarhub_portal"),
	}
}

// loadCookieConfig loads session cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	// Secure by default outside local development
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", strconv.FormatBool(mode == "prod")))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadCalcConfig loads the external calculation service config
func loadCalcConfig() CalcConfig {
	timeout, _ := strconv.Atoi(getEnv("CALC_API_TIMEOUT_SECONDS", "10"))

	return CalcConfig{
		BaseURL:        getEnv("CALC_API_URL", "http://localhost:8000"),
		TimeoutSeconds: timeout,
	}
}

// loadAuditConfig loads audit log config
func loadAuditConfig() AuditConfig {
	capacity, _ := strconv.Atoi(getEnv("AUDIT_CAPACITY", "1000"))

	return AuditConfig{Capacity: capacity}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://portal.solarhub.example.com"
	}
	return origins
}
