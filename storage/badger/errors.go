package badger

import "errors"

var (
	// ErrBackendRequired is returned when a backend is not provided.
	ErrBackendRequired = errors.New("backend required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrChunkRepositoryRequired is returned when a chunk repository is not provided.
	ErrChunkRepositoryRequired = errors.New("chunk repository required")
)
