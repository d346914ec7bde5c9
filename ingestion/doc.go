// Package ingestion builds the knowledge base from a directory of song files.
//
// The Pipeline loads parent documents, slices them into child chunks,
// generates embeddings for every chunk, and persists the resulting
// snapshot wholesale:
//   - Loading and chunking via the corpus package
//   - Embedding batches concurrently using a worker pool
//   - Replacing the stored snapshot in a single pass
//
// Any embedding failure aborts the whole ingestion; the previous stored
// snapshot is only replaced after every chunk has been embedded.
package ingestion
