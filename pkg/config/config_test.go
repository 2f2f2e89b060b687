package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HUSTLEXP_MODE", "HUSTLEXP_BASE_URL", "HUSTLEXP_TIMEOUT", "HUSTLEXP_TOKEN_FILE", "HUSTLEXP_FIXTURE_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := &Config{
		Mode:      source.ModeMock,
		BaseURL:   "http://localhost:3000",
		Timeout:   3 * time.Second,
		TokenFile: "/tmp/token.json",
	}
	require.NoError(t, Save(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, &Config{Mode: source.ModeLive, BaseURL: "http://file"}))

	t.Setenv("HUSTLEXP_MODE", "mock")
	t.Setenv("HUSTLEXP_BASE_URL", "http://env")
	t.Setenv("HUSTLEXP_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, source.ModeMock, cfg.Mode)
	assert.Equal(t, "http://env", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUSTLEXP_MODE", "offline")

	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	assert.Error(t, err)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode config")
}
