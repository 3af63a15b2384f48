package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTokenSecret(t *testing.T) {
	t.Run("environment value wins", func(t *testing.T) {
		cfg := Config{TokenSecret: "from-env", TokenSecretFile: filepath.Join(t.TempDir(), "secret")}

		secret, err := loadTokenSecret(cfg)
		require.NoError(t, err)
		require.Equal(t, "from-env", secret)

		// The file path is untouched when the env secret is used.
		_, err = os.Stat(cfg.TokenSecretFile)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("reads existing file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "secret")
		require.NoError(t, os.WriteFile(file, []byte("stored-secret\n"), 0600))

		secret, err := loadTokenSecret(Config{TokenSecretFile: file})
		require.NoError(t, err)
		require.Equal(t, "stored-secret", secret)
	})

	t.Run("generates and persists when missing", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "nested", "secret")

		secret, err := loadTokenSecret(Config{TokenSecretFile: file})
		require.NoError(t, err)
		require.NotEmpty(t, secret)

		info, err := os.Stat(file)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())

		// A second load returns the persisted secret, not a new one.
		again, err := loadTokenSecret(Config{TokenSecretFile: file})
		require.NoError(t, err)
		require.Equal(t, secret, again)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "secret")
		require.NoError(t, os.WriteFile(file, []byte("  \n"), 0600))

		_, err := loadTokenSecret(Config{TokenSecretFile: file})
		require.Error(t, err)
	})
}
