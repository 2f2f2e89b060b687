package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"HUSTLEXP_MODE", "HUSTLEXP_BASE_URL", "HUSTLEXP_TIMEOUT", "HUSTLEXP_TOKEN_FILE", "HUSTLEXP_FIXTURE_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func decodeResult(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &v), s)
	return v
}

func TestMockScreens(t *testing.T) {
	cases := []struct {
		args  []string
		state string
	}{
		{[]string{"home"}, "success"},
		{[]string{"feed"}, "success"},
		{[]string{"task", "task-301"}, "success"},
		{[]string{"task", "task-303"}, "blocked"},
		{[]string{"progress", "task-204"}, "success"},
		{[]string{"completion", "task-204"}, "success"},
		{[]string{"xp"}, "success"},
		{[]string{"progress", "no-such-task"}, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := runCLI(t, append([]string{"--mode", "mock"}, tc.args...)...)
			require.NoError(t, err)
			res := decodeResult(t, out)
			assert.Equal(t, tc.state, res["state"])
			assert.NotNil(t, res["props"])
		})
	}
}

func TestSnapshot(t *testing.T) {
	out, err := runCLI(t, "--mode", "mock", "snapshot", "task-204")
	require.NoError(t, err)

	res := decodeResult(t, out)
	for key, state := range map[string]string{
		"home":           "success",
		"feed":           "success",
		"taskDetail":     "success",
		"taskProgress":   "success",
		"taskCompletion": "success",
		"xp":             "success",
	} {
		screen, ok := res[key].(map[string]any)
		require.True(t, ok, key)
		assert.Equal(t, state, screen["state"], key)
	}
}

func TestLiveModeAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/xp" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"totalXP": 5, "level": 1, "xpToNextLevel": 95}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, "--mode", "live", "--base-url", srv.URL, "--timeout", "2s",
		"--token-file", filepath.Join(t.TempDir(), "none.json"), "xp")
	require.NoError(t, err)
	assert.Equal(t, "empty", decodeResult(t, out)["state"])

	out, err = runCLI(t, "--mode", "live", "--base-url", srv.URL,
		"--token-file", filepath.Join(t.TempDir(), "none.json"), "home")
	require.NoError(t, err)
	assert.Equal(t, "error", decodeResult(t, out)["state"])
}

func TestConfigSetMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, err := runCLI(t, "--config", path, "config", "set-mode", "mock")
	require.NoError(t, err)
	assert.Contains(t, out, "mock")

	// The stored mode is used without a --mode flag.
	out, err = runCLI(t, "--config", path, "xp")
	require.NoError(t, err)
	assert.Equal(t, "success", decodeResult(t, out)["state"])

	_, err = runCLI(t, "--config", path, "config", "set-mode", "offline")
	assert.Error(t, err)
}

func TestUnknownMode(t *testing.T) {
	_, err := runCLI(t, "--mode", "offline", "xp")
	assert.Error(t, err)
}
