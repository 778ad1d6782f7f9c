package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "users.json", cfg.StorePath)
	assert.Equal(t, "secret.key", cfg.KeyPath)
	assert.Equal(t, "BioHash Authenticator", cfg.Issuer)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func withArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"biohash"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-b", "sqlite", "-d", "vault.db", "-i", "Lab"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "vault.db", cfg.DatabaseDSN)
	assert.Equal(t, "Lab", cfg.Issuer)
	// untouched fields keep defaults
	assert.Equal(t, "users.json", cfg.StorePath)
}

func TestParseJson_OverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JsonConfig{Backend: "memory", Issuer: "Test Lab"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	withArgs(t, []string{"-c", path})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "Test Lab", cfg.Issuer)
	assert.Equal(t, "users.json", cfg.StorePath)
	assert.Equal(t, "secret.key", cfg.KeyPath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t, nil)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, BackendJSON, cfg.Backend)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JsonConfig{Backend: "memory"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	withArgs(t, []string{"-c", path, "-b", "sqlite"})

	cfg := LoadConfig()
	assert.Equal(t, BackendSQLite, cfg.Backend)
}
