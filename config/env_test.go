package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAgentKey, "env-key")
	t.Setenv(EnvAgentBaseURL, "https://env.example.com")
	t.Setenv(EnvAgentTimeout, "45")

	cfg := DefaultConfig()
	require.NoError(t, cfg.FromEnv())

	assert.Equal(t, "env-key", cfg.Agent.Key)
	assert.Equal(t, "https://env.example.com", cfg.Agent.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Agent.Timeout)
	assert.True(t, cfg.Agent.HasCredentials())
}

func TestFromEnvInvalidTimeout(t *testing.T) {
	t.Setenv(EnvAgentTimeout, "soon")

	cfg := DefaultConfig()
	assert.Error(t, cfg.FromEnv())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("FLIGHTINFO_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FLIGHTINFO_TEST_FROM_FILE") })

	require.NoError(t, LoadEnvFile(envPath, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("FLIGHTINFO_TEST_FROM_FILE"))
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(EnvAgentKey+"=file-key\n"), 0o600))
	t.Setenv(EnvAgentKey, "process-key")

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "process-key", os.Getenv(EnvAgentKey))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "flightinfo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("agent:\n  model: from-yaml\n  key: yaml-key\n"), 0o600))
	t.Setenv(EnvAgentKey, "env-key")
	t.Setenv(EnvAgentBaseURL, "https://agent.example.com")

	cfg, err := Resolve(cfgPath, filepath.Join(dir, "none.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", cfg.Agent.Model)
	assert.Equal(t, "env-key", cfg.Agent.Key, "environment wins over the file")
	assert.Equal(t, "https://agent.example.com", cfg.Agent.BaseURL)
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"), filepath.Join(t.TempDir(), "none.env"))
	assert.Error(t, err)
}
