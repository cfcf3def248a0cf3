package services

import (
	"context"
	"errors"

	"solarhub-portal/internal/adapters/persistence/repositories"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/audit"
	"solarhub-portal/internal/pkg/password"
	"solarhub-portal/internal/pkg/token"

	"github.com/google/uuid"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	audit    audit.Recorder
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, rec audit.Recorder, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		audit:    rec,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IP       string `json:"-"`
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IP       string `json:"-"`
}

// LoginResult represents a successful login
type LoginResult struct {
	Identity *domain.Identity
	Token    string
}

// Login authenticates a user and issues a session token.
// A missing user and a wrong password both collapse to
// domain.ErrInvalidCredentials; the audit log keeps the distinct reason.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	s.audit.Record(audit.LevelInfo, "Login attempt", map[string]any{
		"email": input.Email,
		"ip":    input.IP,
	})

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.audit.Record(audit.LevelWarn, "Failed login attempt - Invalid credentials", map[string]any{
				"email":  input.Email,
				"reason": "user not found",
				"ip":     input.IP,
			})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		s.audit.Record(audit.LevelWarn, "Failed login attempt - Invalid credentials", map[string]any{
			"email":  input.Email,
			"reason": "invalid password",
			"ip":     input.IP,
		})
		return nil, domain.ErrInvalidCredentials
	}

	identity := user.Identity()

	tok, err := token.Issue(identity, s.cfg.JWT.Secret, token.SessionTTL)
	if err != nil {
		s.audit.Record(audit.LevelError, "Token signing failed", map[string]any{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.audit.Record(audit.LevelInfo, "Successful login", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
		"role":   string(user.Role),
		"ip":     input.IP,
	})

	return &LoginResult{Identity: identity, Token: tok}, nil
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if exists {
		s.audit.Record(audit.LevelWarn, "Registration failed - Email already exists", map[string]any{
			"email": input.Email,
		})
		return domain.ErrDuplicateEmail
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.DefaultRole
	}
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     role,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrDuplicateEmail
		}
		return err
	}

	s.audit.Record(audit.LevelInfo, "User registered", map[string]any{
		"name":  input.Name,
		"email": input.Email,
		"role":  string(role),
		"ip":    input.IP,
	})

	return nil
}

// Logout records the end of a session. Tokens are not revocable; the
// cookie removal at the transport layer is the whole protocol step.
func (s *AuthService) Logout(identity *domain.Identity) {
	if identity != nil {
		s.audit.Record(audit.LevelInfo, "User logged out", map[string]any{
			"userId": identity.ID,
			"email":  identity.Email,
			"role":   string(identity.Role),
		})
		return
	}
	s.audit.Record(audit.LevelInfo, "Logout attempt with no active session", nil)
}

// VerifyToken validates a session token and returns the identity it carries
func (s *AuthService) VerifyToken(tok string) (*domain.Identity, error) {
	claims, err := token.Verify(tok, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return claims.Identity(), nil
}
