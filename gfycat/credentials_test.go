package gfycat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id":"abc","secret":"xyz"}`), 0o600))

		creds, err := LoadCredentials(path)
		require.NoError(t, err)
		assert.Equal(t, Credentials{ClientID: "abc", ClientSecret: "xyz"}, creds)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("garbage", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`id=abc`), 0o600))

		_, err := LoadCredentials(path)
		assert.ErrorIs(t, err, ErrDecode)
		assert.NotErrorIs(t, err, ErrIO)
	})
}

func TestReadCredentials(t *testing.T) {
	_, err := ReadCredentials(strings.NewReader(`{"id":"abc"}`))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ErrInvalidCredentials, authErr.Kind)
}
