package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

func TestAggregateParents(t *testing.T) {
	p1 := testParent("a/one.md", "one", "a")
	p2 := testParent("a/two.md", "two", "a")
	p3 := testParent("b/three.md", "three", "b")
	c := New([]*core.ParentDocument{p1, p2, p3}, nil)

	hit := func(p *core.ParentDocument) *core.ChildChunk {
		return &core.ChildChunk{ID: "x", ParentID: p.ID}
	}

	t.Run("ordered by match count", func(t *testing.T) {
		parents := c.AggregateParents([]*core.ChildChunk{
			hit(p1), hit(p2), hit(p2), hit(p3), hit(p2),
		})
		require.Len(t, parents, 3)
		assert.Equal(t, p2, parents[0])
		assert.Equal(t, p1, parents[1])
		assert.Equal(t, p3, parents[2])
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		parents := c.AggregateParents([]*core.ChildChunk{
			hit(p3), hit(p1), hit(p2),
		})
		require.Len(t, parents, 3)
		assert.Equal(t, p3, parents[0])
		assert.Equal(t, p1, parents[1])
		assert.Equal(t, p2, parents[2])
	})

	t.Run("unresolvable parent ids are skipped", func(t *testing.T) {
		orphan := &core.ChildChunk{ID: "orphan", ParentID: core.IDFromContent("gone.md")}
		parents := c.AggregateParents([]*core.ChildChunk{
			orphan, orphan, orphan, hit(p1),
		})
		require.Len(t, parents, 1)
		assert.Equal(t, p1, parents[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, c.AggregateParents(nil))
	})
}
