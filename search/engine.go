package search

import (
	"context"
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
)

// DefaultFusionK is the default smoothing constant for reciprocal rank
// fusion. It keeps rank-1 items from dominating the fused score.
const DefaultFusionK = 60

// Engine provides hybrid dense and lexical retrieval over child chunks.
// The corpus is read-only during serving; the engine holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	corpus  *corpus.Corpus
	dense   ai.DenseSearcher
	fusionK int
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithFusionK sets the rank fusion smoothing constant.
// Default is DefaultFusionK. Values below 1 fall back to the default.
func WithFusionK(k int) Option {
	return func(e *Engine) error {
		if k < 1 {
			k = DefaultFusionK
		}
		e.fusionK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a retrieval engine over a corpus snapshot and a dense
// search adapter. The adapter must already be populated with every chunk.
func NewEngine(c *corpus.Corpus, dense ai.DenseSearcher, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}
	if dense == nil {
		return nil, ErrDenseSearcherRequired
	}

	e := &Engine{
		corpus:  c,
		dense:   dense,
		fusionK: DefaultFusionK,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// VectorSearch returns up to k chunks ranked by descending similarity,
// as reported by the dense adapter. Hits whose chunk id does not resolve
// against the corpus are dropped.
func (e *Engine) VectorSearch(ctx context.Context, query string, k int) ([]core.ScoredChunk, error) {
	hits, err := e.dense.Search(ctx, query, k)
	if err != nil {
		e.logger.Error("dense search failed", "query", query, "err", err)
		return nil, err
	}
	return e.resolveHits(hits), nil
}

// LexicalSearch ranks the full corpus by term-frequency relevance over
// chunk content and returns up to k results. An empty corpus or a query
// with no matching terms yields an empty result.
func (e *Engine) LexicalSearch(query string, k int) []core.ScoredChunk {
	return lexicalSearch(e.corpus.Chunks(), query, k)
}

// HybridSearch runs dense and lexical retrieval, each asked for topK
// candidates, fuses the two rankings, and truncates to topK. Every
// result carries its fused score and a distinct chunk id.
func (e *Engine) HybridSearch(ctx context.Context, query string, topK int) ([]core.ScoredChunk, error) {
	dense, err := e.VectorSearch(ctx, query, topK)
	if err != nil {
		return nil, err
	}
	lexical := e.LexicalSearch(query, topK)

	fused := rankFusion(dense, lexical, e.fusionK)
	if len(fused) > topK {
		fused = fused[:topK]
	}

	e.logger.Debug("hybrid search complete",
		"query", query, "dense", len(dense), "lexical", len(lexical), "fused", len(fused))
	return fused, nil
}

// FilteredSearch restricts the candidate pool to chunks whose metadata
// exactly matches every field of the filter set, then runs the same
// dense+lexical+fusion pipeline over that pool only. An empty pool
// returns an empty result; there is no fallback to the unfiltered
// corpus, callers decide whether to retry without filters.
func (e *Engine) FilteredSearch(ctx context.Context, query string, filters core.FilterSet, topK int) ([]core.ScoredChunk, error) {
	var pool []*core.ChildChunk
	keep := make(map[string]bool)
	for _, chunk := range e.corpus.Chunks() {
		if filters.Matches(chunk) {
			pool = append(pool, chunk)
			keep[chunk.ID] = true
		}
	}
	if len(pool) == 0 {
		e.logger.Debug("filtered pool is empty", "query", query, "filters", filters)
		return nil, nil
	}

	hits, err := e.dense.SearchFiltered(ctx, query, topK, func(chunkID string) bool {
		return keep[chunkID]
	})
	if err != nil {
		e.logger.Error("filtered dense search failed", "query", query, "err", err)
		return nil, err
	}
	dense := e.resolveHits(hits)
	lexical := lexicalSearch(pool, query, topK)

	fused := rankFusion(dense, lexical, e.fusionK)
	if len(fused) > topK {
		fused = fused[:topK]
	}
	return fused, nil
}

func (e *Engine) resolveHits(hits []core.SimilarityHit) []core.ScoredChunk {
	results := make([]core.ScoredChunk, 0, len(hits))
	for _, hit := range hits {
		chunk, ok := e.corpus.ChunkByID(hit.ChunkID)
		if !ok {
			e.logger.Warn("dense hit references unknown chunk", "chunkID", hit.ChunkID)
			continue
		}
		results = append(results, core.ScoredChunk{Chunk: chunk, Score: float64(hit.Score)})
	}
	return results
}
