// Copyright 2025 The Mandarin Lyric Mind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lyricmind

import (
	"errors"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
	"github.com/garfieldra/Mandarin-Lyric-Mind/search"
)

// Config holds the system-level settings.
type Config struct {
	// DataPath is the directory holding the markdown song documents.
	DataPath string

	// DBPath is the badger database directory for the knowledge base.
	DBPath string

	// TopK is the result count for list and general retrieval.
	TopK int

	// TopCompareK is the per-group result count for compare retrieval.
	TopCompareK int

	// ChunkSize is the fallback window size in runes for chunking.
	ChunkSize int

	// FusionK is the reciprocal rank fusion constant.
	FusionK int

	// AI configures the embedding and chat services.
	AI *ai.Config
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithDataPath sets the song document directory.
func WithDataPath(path string) Option {
	return func(c *Config) {
		c.DataPath = path
	}
}

// WithDBPath sets the badger database directory.
func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

// WithTopK sets the result count for list and general retrieval.
func WithTopK(k int) Option {
	return func(c *Config) {
		c.TopK = k
	}
}

// WithTopCompareK sets the per-group result count for compare retrieval.
func WithTopCompareK(k int) Option {
	return func(c *Config) {
		c.TopCompareK = k
	}
}

// WithChunkSize sets the fallback chunk window size in runes.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

// WithFusionK sets the reciprocal rank fusion constant.
func WithFusionK(k int) Option {
	return func(c *Config) {
		c.FusionK = k
	}
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(aiConfig *ai.Config) Option {
	return func(c *Config) {
		c.AI = aiConfig
	}
}

// DefaultConfig returns a Config with the default retrieval settings.
func DefaultConfig() *Config {
	return &Config{
		DataPath:    "data",
		DBPath:      "lyricmind.db",
		TopK:        10,
		TopCompareK: 3,
		ChunkSize:   corpus.DefaultChunkSize,
		FusionK:     search.DefaultFusionK,
		AI:          ai.DefaultConfig(),
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: DBPath is required")
	}
	if c.TopK < 1 {
		return errors.New("config: TopK must be positive")
	}
	if c.TopCompareK < 1 {
		return errors.New("config: TopCompareK must be positive")
	}
	if c.ChunkSize < 1 {
		return errors.New("config: ChunkSize must be positive")
	}
	if c.FusionK < 1 {
		return errors.New("config: FusionK must be positive")
	}
	if c.AI == nil {
		return errors.New("config: AI configuration is required")
	}
	return c.AI.Validate()
}
