package repositories

import (
	"context"
	"testing"

	"solarhub-portal/internal/core/domain"
	"solarhub-portal/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_SeedAccounts(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryUserRepository()
	require.NoError(t, err)

	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)
	// Stored hashed, verifiable, never plaintext
	require.NotEqual(t, "password123", user.Password)
	require.True(t, password.Verify("password123", user.Password))

	exists, err := repo.ExistsByEmail(ctx, "org@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestMemoryRepo_FindByEmail_CaseSensitive(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryUserRepository()
	require.NoError(t, err)

	_, err = repo.FindByEmail(context.Background(), "Admin@Example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryRepo_Insert(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryUserRepository()
	require.NoError(t, err)

	ctx := context.Background()
	user := &domain.User{
		ID:       "abc",
		Name:     "Fresh User",
		Email:    "fresh@example.com",
		Password: "some-hash",
		Role:     domain.RoleApplicant,
	}
	require.NoError(t, repo.Insert(ctx, user))

	got, err := repo.FindByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
	require.Equal(t, "abc", got.ID)

	// Duplicate insert is rejected
	require.ErrorIs(t, repo.Insert(ctx, user), domain.ErrDuplicateEmail)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryUserRepository()
	require.NoError(t, err)

	ctx := context.Background()
	first, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, "Admin User", second.Name)
}
