package storage

import (
	"context"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository stores parent documents.
//
// Parent documents are written once per ingestion pass and immutable
// afterward; re-ingestion clears the repository and writes the new
// snapshot wholesale.
type DocumentRepository interface {
	Repository

	// AddDocuments stores one or more parent documents, keyed by their
	// content-derived ids. Adding an existing id overwrites it.
	AddDocuments(ctx context.Context, docs ...*core.ParentDocument) error

	// GetDocument retrieves a single parent document by id.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.ParentDocument, error)

	// GetDocuments retrieves multiple parent documents by their ids.
	// Returns only the documents that exist (no error for missing ids).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.ParentDocument, error)

	// AllDocuments returns every stored parent document in key order.
	AllDocuments(ctx context.Context) ([]*core.ParentDocument, error)

	// Clear removes every parent document.
	Clear(ctx context.Context) error
}

// ChunkRepository stores child chunks together with their embedding
// vectors and serves similarity scans over them.
type ChunkRepository interface {
	Repository

	// AddChunks stores one or more child chunks.
	AddChunks(ctx context.Context, chunks ...*core.ChildChunk) error

	// GetChunk retrieves a single chunk by id.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id string) (*core.ChildChunk, error)

	// AllChunks returns every stored chunk in key order.
	AllChunks(ctx context.Context) ([]*core.ChildChunk, error)

	// FindSimilar scans stored chunk vectors and returns up to limit hits
	// ordered by descending cosine similarity to the query vector. Chunks
	// without a vector are skipped. A non-nil keep predicate restricts
	// the scan to accepted chunk ids.
	FindSimilar(ctx context.Context, vector []float32, limit int, keep func(chunkID string) bool) ([]core.SimilarityHit, error)

	// Clear removes every chunk.
	Clear(ctx context.Context) error
}
