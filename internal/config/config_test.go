package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	require.Equal(t, 10, cfg.API.TimeoutSeconds)
	require.Equal(t, 10*time.Second, cfg.API.Timeout())
	require.NotEmpty(t, cfg.Session.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  baseURL: https://admin.acme.test
  timeoutSeconds: 30
session:
  path: /tmp/amctl-session.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://admin.acme.test", cfg.API.BaseURL)
	require.Equal(t, 30, cfg.API.TimeoutSeconds)
	require.Equal(t, "/tmp/amctl-session.db", cfg.Session.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeoutSeconds: -5\n"), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "timeoutSeconds")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AGENTICMAIL_API_BASEURL", "https://env.acme.test")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://env.acme.test", cfg.API.BaseURL)
}
