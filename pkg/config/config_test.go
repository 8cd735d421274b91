package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdedup/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

dedup:
  threshold: 0.65
  mode: keywords
  workers: 3
  strip_punctuation: true

fetch:
  max_keywords: 5
  interval: 15m

feeds:
  - url: https://example.com/feed1.xml
    name: Feed1
    category: Tech
  - url: https://example.com/feed2.xml
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.InDelta(t, 0.65, cfg.Dedup.Threshold, 1e-9)
		assert.Equal(t, domain.ModeKeywords, cfg.SimilarityMode())
		assert.Equal(t, 3, cfg.Dedup.Workers)
		assert.True(t, cfg.Dedup.StripPunct)
		assert.Equal(t, 5, cfg.Fetch.MaxKeywords)
		assert.Equal(t, 5, cfg.Fetch.MaxConcurrent, "default kept")
		assert.Equal(t, 15*time.Minute, cfg.Fetch.Interval)
		assert.False(t, cfg.Dedup.Auto)

		assert.Equal(t, []domain.FeedSource{
			{Name: "Feed1", URL: "https://example.com/feed1.xml", Category: "Tech"},
			{Name: "https://example.com/feed2.xml", URL: "https://example.com/feed2.xml"},
		}, cfg.Sources(), "name defaults to url")
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		def := Default()
		def.Server.Listen = ":8081"
		assert.Equal(t, def, cfg)
		assert.InDelta(t, 0.8, cfg.Dedup.Threshold, 1e-9)
		assert.Equal(t, domain.ModeText, cfg.SimilarityMode())
		assert.Equal(t, runtime.NumCPU(), cfg.Dedup.Workers)
	})

	t.Run("explicit zero threshold kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "dedup:\n  threshold: 0\n"))
		require.NoError(t, err)
		assert.Zero(t, cfg.Dedup.Threshold)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("NEWSDEDUP_TEST_DSN", "file:custom.db")
		cfg, err := Load(writeConfig(t, "database:\n  dsn: ${NEWSDEDUP_TEST_DSN}\n"))
		require.NoError(t, err)
		assert.Equal(t, "file:custom.db", cfg.Database.DSN)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "dedup:\n  threshold: 1.5\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dedup.threshold must be <= 1")
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, "dedup:\n  mode: semantic\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "dedup.mode")
	})

	t.Run("feed without url", func(t *testing.T) {
		_, err := Load(writeConfig(t, "feeds:\n  - name: broken\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feeds[0].url is required")
	})

	t.Run("short fetch interval", func(t *testing.T) {
		_, err := Load(writeConfig(t, "fetch:\n  interval: 100ms\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch interval must be at least 1 second")
	})

	t.Run("short server timeout", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  timeout: 10ms\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server timeout must be at least 1 second")
	})
}

func TestConfig_SimilarityModeFallback(t *testing.T) {
	cfg := Default()
	cfg.Dedup.Mode = "unknown"
	assert.Equal(t, domain.ModeText, cfg.SimilarityMode())
}
