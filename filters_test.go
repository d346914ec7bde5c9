package lyricmind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
)

func filterCorpus() *corpus.Corpus {
	parents := []*core.ParentDocument{
		{
			ID:      1,
			Source:  "张悬/宝贝.md",
			Content: "宝贝的歌词",
			Meta:    core.Metadata{Title: "宝贝", Artist: "张悬", Album: "神的游戏", Year: "2006"}.WithDefaults(),
		},
		{
			ID:      2,
			Source:  "张悬/艳火.md",
			Content: "艳火的歌词",
			Meta:    core.Metadata{Title: "艳火", Artist: "张悬", Album: "玫瑰色的你", Year: "2012", Region: "台湾"}.WithDefaults(),
		},
		{
			ID:      3,
			Source:  "魏如萱/晚安晚安.md",
			Content: "晚安晚安的歌词",
			Meta:    core.Metadata{Title: "晚安晚安", Artist: "魏如萱", Album: "末路狂花"}.WithDefaults(),
		},
	}
	return corpus.New(parents, nil)
}

func TestInferFilters(t *testing.T) {
	c := filterCorpus()

	t.Run("artist and album from one query", func(t *testing.T) {
		filters := InferFilters("张悬的《玫瑰色的你》怎么样", c)
		assert.Equal(t, core.FilterSet{"artist": "张悬", "album": "玫瑰色的你"}, filters)
	})

	t.Run("single artist", func(t *testing.T) {
		filters := InferFilters("魏如萱有哪些歌", c)
		assert.Equal(t, core.FilterSet{"artist": "魏如萱"}, filters)
	})

	t.Run("year and region", func(t *testing.T) {
		filters := InferFilters("2012年台湾发行的歌", c)
		assert.Equal(t, core.FilterSet{"year": "2012", "region": "台湾"}, filters)
	})

	t.Run("title match", func(t *testing.T) {
		filters := InferFilters("晚安晚安是谁唱的", c)
		assert.Equal(t, core.FilterSet{"title": "晚安晚安"}, filters)
	})

	t.Run("no known value yields empty set", func(t *testing.T) {
		filters := InferFilters("推荐几首好听的歌", c)
		assert.Empty(t, filters)
	})

	t.Run("empty query yields empty set", func(t *testing.T) {
		assert.Empty(t, InferFilters("", c))
	})

	t.Run("nil corpus yields empty set", func(t *testing.T) {
		assert.Empty(t, InferFilters("张悬", nil))
	})
}

func TestInferFilters_LongestValueWins(t *testing.T) {
	parents := []*core.ParentDocument{
		{
			ID:      1,
			Source:  "张悬/宝贝.md",
			Content: "宝贝的歌词",
			Meta:    core.Metadata{Title: "宝贝", Artist: "张悬"}.WithDefaults(),
		},
		{
			ID:      2,
			Source:  "张悬与自然卷/片刻.md",
			Content: "片刻的歌词",
			Meta:    core.Metadata{Title: "片刻", Artist: "张悬与自然卷"}.WithDefaults(),
		},
	}
	c := corpus.New(parents, nil)

	// Both artist values occur in the query, the longer one must win.
	filters := InferFilters("张悬与自然卷合作过哪些歌", c)
	assert.Equal(t, "张悬与自然卷", filters["artist"])

	filters = InferFilters("张悬唱过哪些歌", c)
	assert.Equal(t, "张悬", filters["artist"])
}
