package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := GenerateAccessToken(42, true)
	require.NoError(t, err)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.True(t, claims.IsAdmin)
	require.Equal(t, "42", claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")
	tok, err := GenerateAccessToken(1, false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "wrong-secret")
	_, err = ParseAndValidate(tok)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	_, err := ParseAndValidate("not.a.jwt")
	require.Error(t, err)
}

func TestGenerateFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateAccessToken(1, false)
	require.Error(t, err)
}
