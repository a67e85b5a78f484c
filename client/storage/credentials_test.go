package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DFWPARK_CONFIG_DIR", dir)
	return dir
}

func TestCredentialsRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	in := &Credentials{
		AccessToken:      "access-abc",
		AccessExpiresAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RefreshToken:     "refresh-def",
		RefreshExpiresAt: time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC),
		AccountID:        17,
		Email:            "traveler@example.com",
		Role:             "CUSTOMER",
	}
	require.NoError(t, SaveCredentials(in))

	out, err := LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestCredentialsFileMode(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, SaveCredentials(&Credentials{AccessToken: "x"}))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadMissingCredentials(t *testing.T) {
	useTempConfigDir(t)
	creds, err := LoadCredentials()
	assert.NoError(t, err)
	assert.Nil(t, creds)
}

func TestClearCredentials(t *testing.T) {
	useTempConfigDir(t)
	require.NoError(t, SaveCredentials(&Credentials{AccessToken: "x"}))
	require.NoError(t, ClearCredentials())

	creds, err := LoadCredentials()
	assert.NoError(t, err)
	assert.Nil(t, creds)

	// clearing again is not an error
	assert.NoError(t, ClearCredentials())
}

func TestAccessExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := &Credentials{AccessExpiresAt: now.Add(time.Hour)}
	assert.False(t, fresh.AccessExpired(now))

	stale := &Credentials{AccessExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.AccessExpired(now))

	// zero expiry means we never decide locally; the server will say 401
	never := &Credentials{}
	assert.False(t, never.AccessExpired(now))
}

func TestFileTokenStore(t *testing.T) {
	useTempConfigDir(t)
	require.NoError(t, SaveCredentials(&Credentials{AccessToken: "tok-777"}))

	var store FileTokenStore
	tok, err := store.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-777", tok)

	require.NoError(t, store.Clear())
	tok, err = store.AccessToken()
	require.NoError(t, err)
	assert.Empty(t, tok)
}
