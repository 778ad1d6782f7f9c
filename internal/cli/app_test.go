package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biohash-labs/biohash/internal/config"
)

func TestNewApp_CreatesMissingParentDirectories(t *testing.T) {
	dir := t.TempDir()
	c := &config.Config{
		Backend:   config.BackendJSON,
		StorePath: filepath.Join(dir, "data", "users.json"),
		KeyPath:   filepath.Join(dir, "keys", "secret.key"),
		Issuer:    "Test Issuer",
	}

	app, err := NewApp(c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	// The key is generated eagerly, so its directory and file must exist.
	_, err = os.Stat(c.KeyPath)
	require.NoError(t, err)

	// The store file appears on first mutation, but its directory is ready.
	info, err := os.Stat(filepath.Dir(c.StorePath))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestNewApp_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	c := &config.Config{
		Backend:   "bogus",
		StorePath: filepath.Join(dir, "users.json"),
		KeyPath:   filepath.Join(dir, "secret.key"),
		Issuer:    "Test Issuer",
	}

	_, err := NewApp(c)
	require.Error(t, err)
}
