package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":    "http://api.example:9000",
		"language":        "tr",
		"request_timeout": "30s",
	})

	t.Run("loads from flag", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "http://api.example:9000", cfg.APIBaseURL)
		assert.Equal(t, "tr", cfg.Language)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		// absent keys keep their defaults
		assert.Equal(t, 3, cfg.PageSize)
		assert.Equal(t, "client.db", cfg.StoragePath)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://defaults:1234", PageSize: 42}
		require.NoError(t, parseJSON(cfg, nil))

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42, cfg.PageSize)
	})

	t.Run("missing file → error", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, parseJSON(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJSON(cfg, []string{"-c", bad}))
	})
}
