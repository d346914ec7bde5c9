package badger

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &ChunkRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *ChunkRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ChunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddChunks stores child chunks keyed by their ids.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.ChildChunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateChildChunk(chunk); err != nil {
				return err
			}
			key := makeChunkKey(chunk.ID)
			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves a single chunk by id.
func (r *ChunkRepository) GetChunk(ctx context.Context, id string) (*core.ChildChunk, error) {
	var result *core.ChildChunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)
	return result, err
}

// AllChunks returns every stored chunk in key order.
func (r *ChunkRepository) AllChunks(ctx context.Context) ([]*core.ChildChunk, error) {
	var result []*core.ChildChunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunk *core.ChildChunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if chunk != nil {
				result = append(result, chunk)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindSimilar scans stored chunk vectors and returns up to limit hits
// ordered by descending cosine similarity. Chunks without a vector are
// skipped. A non-nil keep predicate restricts the scan.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, limit int, keep func(chunkID string) bool) ([]core.SimilarityHit, error) {
	var hits []core.SimilarityHit

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunk *core.ChildChunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if chunk == nil || len(chunk.Vector) == 0 {
				continue
			}
			if keep != nil && !keep(chunk.ID) {
				continue
			}

			hits = append(hits, core.SimilarityHit{
				ChunkID: chunk.ID,
				Score:   cosineSimilarity(vector, chunk.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending; ties keep key order from the scan.
	slices.SortStableFunc(hits, func(a, b core.SimilarityHit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// Clear removes every chunk.
func (r *ChunkRepository) Clear(ctx context.Context) error {
	return r.backend.dropPrefix([]byte(chunkPrefix))
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Zero vectors and mismatched lengths score zero.
func cosineSimilarity(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
