package repositories

import (
	"context"

	"solarhub-portal/internal/core/domain"
)

// UserRepository defines the pluggable user store.
// FindByEmail is a case-sensitive exact match.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
