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


package badger

import (
	"context"
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
)

// DenseSearcher serves similarity queries by embedding the query text
// and scanning the stored chunk vectors. It implements ai.DenseSearcher
// over a chunk repository.
type DenseSearcher struct {
	chunks   storage.ChunkRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ ai.DenseSearcher = (*DenseSearcher)(nil)

// DenseOption configures a DenseSearcher.
type DenseOption func(*DenseSearcher) error

// WithDenseLogger sets a custom logger.
// Default is slog.Default().
func WithDenseLogger(logger *slog.Logger) DenseOption {
	return func(d *DenseSearcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDenseSearcher creates a dense searcher over a chunk repository.
// The repository must hold every chunk with its embedding before the
// first Search call.
func NewDenseSearcher(chunks storage.ChunkRepository, embedder ai.Embedder, opts ...DenseOption) (*DenseSearcher, error) {
	if chunks == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	d := &DenseSearcher{
		chunks:   chunks,
		embedder: embedder,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Search returns up to k chunk ids ranked by descending similarity.
func (d *DenseSearcher) Search(ctx context.Context, query string, k int) ([]core.SimilarityHit, error) {
	return d.SearchFiltered(ctx, query, k, nil)
}

// SearchFiltered behaves like Search restricted to chunks the keep
// predicate accepts.
func (d *DenseSearcher) SearchFiltered(ctx context.Context, query string, k int, keep func(chunkID string) bool) ([]core.SimilarityHit, error) {
	vector, err := d.embedder.EmbedText(ctx, query)
	if err != nil {
		d.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	return d.chunks.FindSimilar(ctx, vector, k, keep)
}
