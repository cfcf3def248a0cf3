package models

import (
	"time"

	"solarhub-portal/internal/core/domain"

	"gorm.io/gorm"
)

// User represents the users table
type User struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'applicant'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// ToDomain maps the persistence model to the domain entity
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     domain.Role(u.Role),
	}
}

// FromDomain maps a domain entity to the persistence model
func FromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     string(u.Role),
	}
}

// AutoMigrate creates or updates tables for the mysql user store
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
