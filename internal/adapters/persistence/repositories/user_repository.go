package repositories

import (
	"context"
	"errors"

	"solarhub-portal/internal/adapters/persistence/models"
	"solarhub-portal/internal/core/domain"

	"gorm.io/gorm"
)

// userRepository implements UserRepository backed by MySQL
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new MySQL user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail gets a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToDomain(), nil
}

// Insert creates a new user
func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(models.FromDomain(user)).Error
}

// ExistsByEmail checks if a user exists by email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
