package cryptox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	t.Run("correct password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("Sup3rSecret!", hash))
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("wrong", hash), ErrPasswordMismatch)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := HashPassword("Sup3rSecret!")
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})

	t.Run("malformed hash rejected", func(t *testing.T) {
		require.Error(t, VerifyPassword("anything", "$argon2id$garbage"))
		require.Error(t, VerifyPassword("anything", "not-a-hash"))
	})
}
