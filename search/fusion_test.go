package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

func scored(id string, score float64) core.ScoredChunk {
	return core.ScoredChunk{
		Chunk: &core.ChildChunk{ID: id, Content: "chunk " + id},
		Score: score,
	}
}

func ids(results []core.ScoredChunk) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Chunk.ID
	}
	return out
}

func TestRankFusionOverlapScoresHighest(t *testing.T) {
	// Dense returns [A, B], lexical returns [A, C]. A appears in both
	// lists and must rank first with both contributions summed.
	a := []core.ScoredChunk{scored("A", 0.9), scored("B", 0.8)}
	b := []core.ScoredChunk{scored("A", 5), scored("C", 3)}

	fused := rankFusion(a, b, 60)
	require.Len(t, fused, 3)

	assert.Equal(t, []string{"A", "B", "C"}, ids(fused))
	assert.InDelta(t, 1.0/61+1.0/61, fused[0].Score, 1e-9)
	assert.InDelta(t, 1.0/62, fused[1].Score, 1e-9)
	assert.InDelta(t, 1.0/62, fused[2].Score, 1e-9)

	// B and C tie; B comes first because list a is scanned before list b.
	assert.Equal(t, fused[1].Score, fused[2].Score)
}

func TestRankFusionDeterministic(t *testing.T) {
	a := []core.ScoredChunk{scored("x", 1), scored("y", 1), scored("z", 1)}
	b := []core.ScoredChunk{scored("q", 1), scored("y", 1)}

	first := rankFusion(a, b, 60)
	for i := 0; i < 20; i++ {
		assert.Equal(t, ids(first), ids(rankFusion(a, b, 60)))
	}
}

func TestRankFusionDeduplicatesUnion(t *testing.T) {
	a := []core.ScoredChunk{scored("1", 1), scored("2", 1)}
	b := []core.ScoredChunk{scored("2", 1), scored("3", 1), scored("1", 1)}

	fused := rankFusion(a, b, 60)
	assert.Len(t, fused, 3)
	assert.LessOrEqual(t, len(fused), len(a)+len(b))

	seen := make(map[string]bool)
	for _, r := range fused {
		assert.False(t, seen[r.Chunk.ID])
		seen[r.Chunk.ID] = true
		assert.Greater(t, r.Score, 0.0)
	}
}

func TestRankFusionEmptyInputs(t *testing.T) {
	assert.Empty(t, rankFusion(nil, nil, 60))

	only := []core.ScoredChunk{scored("solo", 1)}
	fused := rankFusion(only, nil, 60)
	require.Len(t, fused, 1)
	assert.InDelta(t, 1.0/61, fused[0].Score, 1e-9)
}
