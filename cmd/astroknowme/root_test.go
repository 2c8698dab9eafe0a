package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut, _, err := runApp(t, args...)
	return out, errOut, err
}

func runApp(t *testing.T, args ...string) (string, string, *app, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	a := newApp()
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := a.execute(context.Background(), cmd)
	return stdout.String(), stderr.String(), a, err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestFetchPrintsNormalizedJSON(t *testing.T) {
	var apiKey string
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"near_earth_objects":{"2024-05-05":[{"name":"(2024 JX)"}]}}`))
	}))
	defer up.Close()
	t.Setenv("NEO_URL", up.URL)

	out, _, err := run(t, "--api-key", "from-flag", "fetch", "neo")

	require.NoError(t, err)
	assert.Equal(t, "from-flag", apiKey)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-05-05", got["date"])
	assert.Len(t, got["asteroids"], 1)
}

func TestFetchUpstreamDownPrintsEmptyShape(t *testing.T) {
	up := httptest.NewServer(http.NotFoundHandler())
	defer up.Close()
	t.Setenv("EXOPLANET_URL", up.URL)

	out, _, err := run(t, "fetch", "exoplanets")

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestFetchUnknownSource(t *testing.T) {
	_, _, err := run(t, "fetch", "pluto")

	assert.Error(t, err)
}

func TestFetchRequiresSource(t *testing.T) {
	_, _, err := run(t, "fetch")

	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "chatty", "version")

	assert.Error(t, err)
}

func TestFlagsAreRegistered(t *testing.T) {
	cmd := newRootCmd(newApp())

	for _, name := range []string{"api-key", "log-level", "fetch-timeout"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("port"))
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astro.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")

	_, _, a, err := runApp(t, "fetch", "pluto")

	require.Error(t, err)
	assert.Nil(t, a.logFile)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
