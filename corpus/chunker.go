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


package corpus

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// DefaultChunkSize is the window length, in characters, of the
// fixed-size chunking fallback.
const DefaultChunkSize = 800

// Chunker slices parent documents into child chunks for indexing.
//
// For each parent it tries, in order:
//  1. header-aware split on the known section vocabulary, kept only if it
//     yields more than one block;
//  2. the lyrics section alone, when the parent has non-empty lyrics;
//  3. fixed-size character windows over the raw content.
//
// The resulting block contents and their order depend only on the parent's
// content and the configured window size. Chunk ids are freshly generated
// on every run.
type Chunker struct {
	chunkSize int
	logger    *slog.Logger
}

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker) error

// WithChunkSize sets the window length of the fixed-size fallback.
// Default is DefaultChunkSize. Values below 1 fall back to the default.
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) error {
		if size < 1 {
			size = DefaultChunkSize
		}
		c.chunkSize = size
		return nil
	}
}

// WithChunkerLogger sets a custom logger.
// Default is slog.Default().
func WithChunkerLogger(logger *slog.Logger) ChunkerOption {
	return func(c *Chunker) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewChunker creates a chunker.
func NewChunker(opts ...ChunkerOption) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Chunk slices every parent into child chunks. Each chunk inherits its
// parent's metadata and is tagged with its zero-based position among
// siblings. A parent with empty content produces zero chunks without
// failing the batch. Calling Chunk with no parents is an error.
func (c *Chunker) Chunk(parents []*core.ParentDocument) ([]*core.ChildChunk, error) {
	if len(parents) == 0 {
		return nil, ErrNoDocuments
	}

	var chunks []*core.ChildChunk
	for _, parent := range parents {
		for idx, block := range c.blocks(parent) {
			chunks = append(chunks, &core.ChildChunk{
				ID:       uuid.NewString(),
				ParentID: parent.ID,
				Index:    idx,
				Content:  block,
				Meta:     parent.Meta,
			})
		}
	}

	c.logger.Info("chunking complete", "parents", len(parents), "chunks", len(chunks))
	return chunks, nil
}

// blocks applies the chunking ladder to one parent. Every returned block
// is trimmed and non-empty.
func (c *Chunker) blocks(parent *core.ParentDocument) []string {
	blocks := headerBlocks(parent.Content)
	if len(blocks) > 1 {
		return blocks
	}

	if lyrics := strings.TrimSpace(parent.Meta.Lyrics); lyrics != "" {
		return []string{lyrics}
	}

	return windowBlocks(parent.Content, c.chunkSize)
}

// headerBlocks returns the bodies of the known-vocabulary sections of
// text. When none of the known headers appear, it falls back to splitting
// at every "##" header, keeping the content before the first header as
// its own block.
func headerBlocks(text string) []string {
	sections := splitSections(text)

	var known []string
	for _, sec := range sections {
		if fieldForHeader(sec.header) != "" && sec.body != "" {
			known = append(known, sec.body)
		}
	}
	if len(known) > 0 {
		return known
	}

	var blocks []string
	for _, sec := range sections {
		if sec.body != "" {
			blocks = append(blocks, sec.body)
		}
	}
	return blocks
}

// windowBlocks splits text into contiguous windows of size characters
// with no overlap. Short inputs yield a single block; empty input yields
// none.
func windowBlocks(text string, size int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var blocks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		block := strings.TrimSpace(string(runes[start:end]))
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
