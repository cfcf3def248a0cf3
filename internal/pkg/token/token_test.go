package token

import (
	"testing"
	"time"

	"solarhub-portal/internal/core/domain"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:    "1",
		Name:  "John Doe",
		Email: "applicant@example.com",
		Role:  domain.RoleApplicant,
	}
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	identity := testIdentity()
	tok, err := Issue(identity, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Verify(tok, testSecret)
	require.NoError(t, err)
	require.Equal(t, identity.ID, claims.UserID)
	require.Equal(t, identity.Name, claims.Name)
	require.Equal(t, identity.Email, claims.Email)
	require.Equal(t, string(identity.Role), claims.Role)

	got := claims.Identity()
	require.Equal(t, identity, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testIdentity(), testSecret, -1*time.Second)
	require.NoError(t, err)

	_, err = Verify(tok, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testIdentity(), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Verify(tok, "another-secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Parallel()

	tok, err := Issue(testIdentity(), testSecret, time.Hour)
	require.NoError(t, err)

	// Flipping any byte must break verification
	for _, i := range []int{0, len(tok) / 2, len(tok) - 1} {
		raw := []byte(tok)
		raw[i] ^= 0x01
		_, err := Verify(string(raw), testSecret)
		require.Error(t, err, "byte %d flipped, token must not verify", i)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := Verify(tok, testSecret)
		require.ErrorIs(t, err, ErrTokenInvalid)
	}
}
