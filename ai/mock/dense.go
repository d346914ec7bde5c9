package mock

import (
	"context"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// MockDenseSearcher is a test double for the dense search adapter.
// It allows injecting custom behavior through function fields.
type MockDenseSearcher struct {
	SearchFunc         func(ctx context.Context, query string, k int) ([]core.SimilarityHit, error)
	SearchFilteredFunc func(ctx context.Context, query string, k int, keep func(chunkID string) bool) ([]core.SimilarityHit, error)
	callCount          int
}

// NewMockDenseSearcher creates a mock dense searcher that returns no hits.
func NewMockDenseSearcher() *MockDenseSearcher {
	return &MockDenseSearcher{}
}

// Search returns the injected hits, or none.
func (m *MockDenseSearcher) Search(ctx context.Context, query string, k int) ([]core.SimilarityHit, error) {
	m.callCount++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, k)
	}
	return nil, nil
}

// SearchFiltered returns the injected hits restricted by keep, or none.
// Without an injected SearchFilteredFunc it applies keep to the result
// of Search.
func (m *MockDenseSearcher) SearchFiltered(ctx context.Context, query string, k int, keep func(chunkID string) bool) ([]core.SimilarityHit, error) {
	m.callCount++
	if m.SearchFilteredFunc != nil {
		return m.SearchFilteredFunc(ctx, query, k, keep)
	}
	if m.SearchFunc != nil {
		hits, err := m.SearchFunc(ctx, query, k)
		if err != nil || keep == nil {
			return hits, err
		}
		kept := make([]core.SimilarityHit, 0, len(hits))
		for _, hit := range hits {
			if keep(hit.ChunkID) {
				kept = append(kept, hit)
			}
		}
		return kept, nil
	}
	return nil, nil
}

// CallCount returns the number of search calls made.
func (m *MockDenseSearcher) CallCount() int {
	return m.callCount
}

// Reset clears the call count.
func (m *MockDenseSearcher) Reset() {
	m.callCount = 0
}
