package badger

import (
	"context"
	"testing"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai/mock"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

func TestNewDenseSearcher(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	embedder := mock.NewMockEmbedder()

	if _, err := NewDenseSearcher(nil, embedder); err != ErrChunkRepositoryRequired {
		t.Fatalf("Expected ErrChunkRepositoryRequired, got %v", err)
	}
	if _, err := NewDenseSearcher(chunkRepo, nil); err != ErrEmbedderRequired {
		t.Fatalf("Expected ErrEmbedderRequired, got %v", err)
	}
	if _, err := NewDenseSearcher(chunkRepo, embedder); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
}

func TestDenseSearcherSearch(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	embedder := mock.NewMockEmbedder()

	// Store chunks whose vectors come from the same deterministic
	// embedder the searcher uses, so the query for a stored text must
	// rank that text first.
	texts := []string{"我的宝贝宝贝", "夜空中最亮的星", "晚安晚安亲爱的"}
	parentID := core.IDFromContent("p.md")
	for i, text := range texts {
		vec, err := embedder.EmbedText(ctx, text)
		if err != nil {
			t.Fatalf("Embed failed: %v", err)
		}
		chunk := newChunk(text, parentID, text, vec)
		chunk.Index = i
		if err := chunkRepo.AddChunks(ctx, chunk); err != nil {
			t.Fatalf("Failed to add chunk: %v", err)
		}
	}

	searcher, err := NewDenseSearcher(chunkRepo, embedder)
	if err != nil {
		t.Fatalf("Failed to create dense searcher: %v", err)
	}

	hits, err := searcher.Search(ctx, "我的宝贝宝贝", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	if hits[0].ChunkID != "我的宝贝宝贝" {
		t.Fatalf("Expected the identical text to rank first, got %q", hits[0].ChunkID)
	}

	filtered, err := searcher.SearchFiltered(ctx, "我的宝贝宝贝", 10, func(id string) bool {
		return id == "晚安晚安亲爱的"
	})
	if err != nil {
		t.Fatalf("SearchFiltered failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ChunkID != "晚安晚安亲爱的" {
		t.Fatalf("Expected only the kept chunk, got %v", filtered)
	}
}
