package corpus

import (
	"sort"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// AggregateParents reduces child chunk hits into a ranked, deduplicated
// list of parent documents. Parents are ordered by how many of the input
// chunks reference them, descending; ties keep the order in which each
// parent id was first encountered in the input. Chunks whose parent id
// does not resolve against the corpus are skipped.
func (c *Corpus) AggregateParents(chunks []*core.ChildChunk) []*core.ParentDocument {
	counts := make(map[core.ID]int)
	var order []core.ID
	for _, ch := range chunks {
		if ch == nil {
			continue
		}
		if counts[ch.ParentID] == 0 {
			order = append(order, ch.ParentID)
		}
		counts[ch.ParentID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	parents := make([]*core.ParentDocument, 0, len(order))
	for _, id := range order {
		if p, ok := c.byID[id]; ok {
			parents = append(parents, p)
		}
	}
	return parents
}
