package repositories

import (
	"context"
	"fmt"
	"sync"

	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/password"
)

// seedUser is a fixture account for the in-memory store
type seedUser struct {
	id       string
	name     string
	email    string
	password string
	role     domain.Role
}

// Fixture accounts for local development
var seedUsers = []seedUser{
	{id: "1", name: "John Doe", email: "applicant@example.com", password: "password123", role: domain.RoleApplicant},
	{id: "2", name: "Admin User", email: "admin@example.com", password: "password123", role: domain.RoleAdmin},
	{id: "3", name: "Organization User", email: "org@example.com", password: "password123", role: domain.RoleOrganization},
}

// memoryUserRepository implements UserRepository with an in-process map.
// NOT for production use: contents are lost on restart.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by email
}

// NewMemoryUserRepository creates an in-memory user repository seeded with
// the fixture accounts. Seed passwords are hashed at construction, never
// stored as plaintext.
func NewMemoryUserRepository() (UserRepository, error) {
	users := make(map[string]*domain.User, len(seedUsers))
	for _, s := range seedUsers {
		hash, err := password.Hash(s.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", s.email, err)
		}
		users[s.email] = &domain.User{
			ID:       s.id,
			Name:     s.name,
			Email:    s.email,
			Password: hash,
			Role:     s.role,
		}
	}
	return &memoryUserRepository{users: users}, nil
}

// FindByEmail gets a user by email
func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// Insert creates a new user
func (r *memoryUserRepository) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u := *user
	r.users[user.Email] = &u
	return nil
}

// ExistsByEmail checks if a user exists by email
func (r *memoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[email]
	return ok, nil
}
