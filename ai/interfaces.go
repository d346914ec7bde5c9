package ai

import (
	"context"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Classifier assigns a query one of the closed set of routes.
// Implementations must coerce any unrecognized model output to RouteGeneral.
type Classifier interface {
	// ClassifyQuery classifies a user question into a Route.
	// Returns an error only if the underlying call fails; an unexpected
	// label is not an error, it maps to RouteGeneral.
	ClassifyQuery(ctx context.Context, query string) (Route, error)
}

// Rewriter normalizes a vague query into a retrieval-friendly phrasing.
// A query that needs no rewrite is returned unchanged.
type Rewriter interface {
	RewriteQuery(ctx context.Context, query string) (string, error)
}

// Decomposer splits a query into one or more independent natural-language
// sub-queries. A single-intent query yields exactly one sub-query equal to
// its input.
type Decomposer interface {
	ExtractSubqueries(ctx context.Context, query string) ([]string, error)
}

// StreamFunc receives answer fragments as they are generated.
// A nil StreamFunc disables streaming; the complete answer is still returned.
type StreamFunc func(fragment string)

// Generator composes natural-language answers from retrieved parent documents.
// Retrieval itself is always synchronous and complete before any Generate
// call; streaming is purely an output-delivery concern.
type Generator interface {
	// GenerateAnswer produces a detailed answer grounded in the documents.
	GenerateAnswer(ctx context.Context, question string, docs []*core.ParentDocument, stream StreamFunc) (string, error)

	// GenerateComparison produces a comparative answer across per-subject
	// document groups (one group per comparison side).
	GenerateComparison(ctx context.Context, question string, groups [][]*core.ParentDocument, stream StreamFunc) (string, error)

	// GenerateDirect answers without any retrieved context.
	GenerateDirect(ctx context.Context, question string, stream StreamFunc) (string, error)
}

// DenseSearcher is the external similarity index: an opaque scored
// nearest-neighbor service over child chunk content.
// It must be populated with every chunk's content and embedding before
// the first Search call.
type DenseSearcher interface {
	// Search returns up to k chunk ids ranked by descending similarity.
	// Ties are broken by index-assigned order, opaque to the caller.
	Search(ctx context.Context, query string, k int) ([]core.SimilarityHit, error)

	// SearchFiltered behaves like Search but only considers chunks the
	// keep predicate accepts. A nil predicate is equivalent to Search.
	SearchFiltered(ctx context.Context, query string, k int, keep func(chunkID string) bool) ([]core.SimilarityHit, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. The returned services share configuration and
// resources and are safe for concurrent use.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Classifier returns the route classification service.
	Classifier() Classifier

	// Rewriter returns the query rewriting service.
	Rewriter() Rewriter

	// Decomposer returns the sub-query extraction service.
	Decomposer() Decomposer

	// Generator returns the answer generation service.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
