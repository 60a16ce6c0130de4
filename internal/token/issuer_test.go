package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-eats/internal/model"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", 7*24*time.Hour)

	raw, err := issuer.Issue("user-123", model.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, model.RoleStudent, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := NewIssuer("secret-a", time.Hour).Issue("user-123", model.RoleVendor)
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Parse(raw)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", -time.Minute)
	raw, err := issuer.Issue("user-123", model.RoleStudent)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Parse(raw)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	}
}
