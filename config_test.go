package lyricmind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "data", cfg.DataPath)
	assert.Equal(t, "lyricmind.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, 3, cfg.TopCompareK)
	assert.Equal(t, 800, cfg.ChunkSize)
	assert.Equal(t, 60, cfg.FusionK)
	require.NotNil(t, cfg.AI)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	aiCfg := ai.NewConfig(ai.WithChatModel("qwen2.5:7b"))
	cfg := NewConfig(
		WithDataPath("songs"),
		WithDBPath("/tmp/kb"),
		WithTopK(5),
		WithTopCompareK(2),
		WithChunkSize(400),
		WithFusionK(30),
		WithAIConfig(aiCfg),
	)

	assert.Equal(t, "songs", cfg.DataPath)
	assert.Equal(t, "/tmp/kb", cfg.DBPath)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, 2, cfg.TopCompareK)
	assert.Equal(t, 400, cfg.ChunkSize)
	assert.Equal(t, 30, cfg.FusionK)
	assert.Equal(t, "qwen2.5:7b", cfg.AI.ChatModel)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero top k", func(c *Config) { c.TopK = 0 }},
		{"zero top compare k", func(c *Config) { c.TopCompareK = 0 }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"zero fusion k", func(c *Config) { c.FusionK = 0 }},
		{"missing ai config", func(c *Config) { c.AI = nil }},
		{"invalid ai config", func(c *Config) { c.AI.ChatModel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
