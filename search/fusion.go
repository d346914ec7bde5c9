package search

import (
	"sort"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// rankFusion merges two ranked chunk lists with reciprocal rank fusion.
// Each chunk scores the sum over both lists of 1/(k+rank), rank being its
// 1-based position in that list, so a chunk present in both lists
// accumulates both contributions. The output is the deduplicated union
// sorted descending by fused score; ties keep first-encountered order,
// with list a scanned before list b. Every result carries its fused
// score.
func rankFusion(a, b []core.ScoredChunk, k int) []core.ScoredChunk {
	scores := make(map[string]float64)
	chunks := make(map[string]*core.ChildChunk)
	var order []string

	accumulate := func(list []core.ScoredChunk) {
		for rank, sc := range list {
			if sc.Chunk == nil {
				continue
			}
			id := sc.Chunk.ID
			if _, seen := scores[id]; !seen {
				order = append(order, id)
				chunks[id] = sc.Chunk
			}
			scores[id] += 1.0 / float64(k+rank+1)
		}
	}
	accumulate(a)
	accumulate(b)

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	fused := make([]core.ScoredChunk, len(order))
	for i, id := range order {
		fused[i] = core.ScoredChunk{Chunk: chunks[id], Score: scores[id]}
	}
	return fused
}
