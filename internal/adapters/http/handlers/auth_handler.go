package handlers

import (
	"errors"
	"strings"

	"solarhub-portal/internal/adapters/http/middleware"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/core/services"
	"solarhub-portal/internal/pkg/password"
	"solarhub-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password; sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		IP:       c.IP(),
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	middleware.AttachSessionCookie(c, result.Token, h.cfg)

	return c.JSON(fiber.Map{
		"user": result.Identity,
	})
}

// Logout handles user logout. Tokens are not revoked server-side; the
// session ends when the cookie is removed.
// @Summary Logout user
// @Description Clear the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c, h.cfg.JWT.Secret)
	h.authService.Logout(identity)

	middleware.ClearSessionCookie(c, h.cfg)

	return response.Success(c)
}

// Register handles user registration
// @Summary Register new user
// @Description Create a new account; role defaults to applicant
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InternalServerError(c, "Internal server error")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if !password.ValidatePassword(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     strings.TrimSpace(req.Role),
		IP:       c.IP(),
	}

	if err := h.authService.Register(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.BadRequest(c, "Email already exists")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		default:
			return response.InternalServerError(c, "Internal server error")
		}
	}

	return response.Created(c)
}

// Session returns the current session state
// @Summary Session check
// @Description Report whether the caller has a valid session
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c, h.cfg.JWT.Secret)

	if identity == nil {
		return c.JSON(fiber.Map{
			"authenticated": false,
			"user":          nil,
		})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          identity,
	})
}
