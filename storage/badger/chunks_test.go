package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
)

func newChunk(id string, parentID core.ID, content string, vector []float32) *core.ChildChunk {
	return &core.ChildChunk{
		ID:       id,
		ParentID: parentID,
		Index:    0,
		Content:  content,
		Meta:     core.Metadata{}.WithDefaults(),
		Vector:   vector,
	}
}

func TestChunkBasics(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	parentID := core.IDFromContent("张悬/宝贝.md")
	chunk := newChunk("c-1", parentID, "我的宝贝宝贝", []float32{1, 0, 0})

	if err := chunkRepo.AddChunks(ctx, chunk); err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}

	retrieved, err := chunkRepo.GetChunk(ctx, "c-1")
	if err != nil {
		t.Fatalf("Failed to get chunk: %v", err)
	}
	if retrieved.Content != "我的宝贝宝贝" {
		t.Fatalf("Expected content 我的宝贝宝贝, got %q", retrieved.Content)
	}
	if retrieved.ParentID != parentID {
		t.Fatalf("Parent id mismatch: %d != %d", retrieved.ParentID, parentID)
	}
	if len(retrieved.Vector) != 3 {
		t.Fatalf("Expected 3-dim vector, got %d", len(retrieved.Vector))
	}
}

func TestChunkNotFound(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	_, err = chunkRepo.GetChunk(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindSimilarOrdersByCosine(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	parentID := core.IDFromContent("p.md")
	chunks := []*core.ChildChunk{
		newChunk("exact", parentID, "一", []float32{1, 0, 0}),
		newChunk("close", parentID, "二", []float32{0.9, 0.1, 0}),
		newChunk("far", parentID, "三", []float32{0, 1, 0}),
		newChunk("no-vector", parentID, "四", nil),
	}
	if err := chunkRepo.AddChunks(ctx, chunks...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	hits, err := chunkRepo.FindSimilar(ctx, []float32{1, 0, 0}, 10, nil)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("Expected 3 hits (vectorless chunk skipped), got %d", len(hits))
	}
	if hits[0].ChunkID != "exact" || hits[1].ChunkID != "close" || hits[2].ChunkID != "far" {
		t.Fatalf("Unexpected order: %v", hits)
	}
	if hits[0].Score < 0.999 {
		t.Fatalf("Expected near-1 similarity for exact match, got %f", hits[0].Score)
	}
}

func TestFindSimilarLimitAndKeep(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	parentID := core.IDFromContent("p.md")
	chunks := []*core.ChildChunk{
		newChunk("a", parentID, "一", []float32{1, 0}),
		newChunk("b", parentID, "二", []float32{0.8, 0.2}),
		newChunk("c", parentID, "三", []float32{0.5, 0.5}),
	}
	if err := chunkRepo.AddChunks(ctx, chunks...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	hits, err := chunkRepo.FindSimilar(ctx, []float32{1, 0}, 2, nil)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected limit of 2 hits, got %d", len(hits))
	}

	hits, err = chunkRepo.FindSimilar(ctx, []float32{1, 0}, 10, func(id string) bool {
		return id == "c"
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ChunkID != "c" {
		t.Fatalf("Expected only chunk c, got %v", hits)
	}
}

func TestFindSimilarEmptyStore(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	hits, err := chunkRepo.FindSimilar(context.Background(), []float32{1, 0}, 10, nil)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected no hits, got %d", len(hits))
	}
}

func TestChunkClear(t *testing.T) {
	docRepo, chunkRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chunkRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	if err := chunkRepo.AddChunks(ctx, newChunk("c", core.ID(1), "内容", nil)); err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}
	if err := chunkRepo.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear chunks: %v", err)
	}
	all, err := chunkRepo.AllChunks(ctx)
	if err != nil {
		t.Fatalf("Failed to list chunks: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("Expected 0 chunks after clear, got %d", len(all))
	}
}
