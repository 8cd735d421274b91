package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr []string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "threshold bounds inclusive", modify: func(cfg *Config) { cfg.Dedup.Threshold = 1 }},
		{name: "zero threshold", modify: func(cfg *Config) { cfg.Dedup.Threshold = 0 }},
		{
			name:    "negative threshold",
			modify:  func(cfg *Config) { cfg.Dedup.Threshold = -0.1 },
			wantErr: []string{"dedup.threshold must be >= 0"},
		},
		{
			name:    "unknown mode",
			modify:  func(cfg *Config) { cfg.Dedup.Mode = "fuzzy" },
			wantErr: []string{`dedup.mode must be one of [text keywords], got "fuzzy"`},
		},
		{
			name: "several violations",
			modify: func(cfg *Config) {
				cfg.Fetch.MaxConcurrent = 0
				cfg.Database.MaxOpenConns = 0
			},
			wantErr: []string{"fetch.max_concurrent must be >= 1", "database.max_open_conns must be >= 1"},
		},
		{
			name:    "feed url required",
			modify:  func(cfg *Config) { cfg.Feeds = []Feed{{Name: "ok", URL: "http://example.com"}, {Name: "bad"}} },
			wantErr: []string{"feeds[1].url is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := Verify(cfg)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	require.NotNil(t, schema.Properties)

	dedup, ok := schema.Properties.Get("dedup")
	require.True(t, ok)
	threshold, ok := dedup.Properties.Get("threshold")
	require.True(t, ok)
	assert.Equal(t, "0", threshold.Minimum.String())
	assert.Equal(t, "1", threshold.Maximum.String())

	mode, ok := dedup.Properties.Get("mode")
	require.True(t, ok)
	assert.Equal(t, []any{"text", "keywords"}, mode.Enum)

	feeds, ok := schema.Properties.Get("feeds")
	require.True(t, ok)
	require.NotNil(t, feeds.Items)
	assert.Equal(t, []string{"url"}, feeds.Items.Required)
}
