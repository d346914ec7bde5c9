package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

func testParent(source, title, artist string) *core.ParentDocument {
	return &core.ParentDocument{
		ID:     core.IDFromContent(source),
		Source: source,
		Meta: core.Metadata{
			Title:  title,
			Artist: artist,
		}.WithDefaults(),
	}
}

func TestCorpusLookups(t *testing.T) {
	p1 := testParent("张悬/宝贝.md", "宝贝", "张悬")
	p2 := testParent("张悬/玫瑰色的你.md", "玫瑰色的你", "张悬")
	chunk := &core.ChildChunk{ID: "c1", ParentID: p1.ID, Content: "我的宝贝宝贝", Meta: p1.Meta}

	c := New([]*core.ParentDocument{p1, p2}, []*core.ChildChunk{chunk})

	got, ok := c.ParentByID(p2.ID)
	require.True(t, ok)
	assert.Equal(t, p2, got)

	_, ok = c.ParentByID(core.IDFromContent("nope"))
	assert.False(t, ok)

	gotChunk, ok := c.ChunkByID("c1")
	require.True(t, ok)
	assert.Equal(t, chunk, gotChunk)

	assert.Len(t, c.Parents(), 2)
	assert.Len(t, c.Chunks(), 1)
}

func TestCorpusFieldValues(t *testing.T) {
	p1 := testParent("张悬/宝贝.md", "宝贝", "张悬")
	p2 := testParent("张悬/玫瑰色的你.md", "玫瑰色的你", "张悬")
	p3 := testParent("魏如萱/晚安晚安.md", "晚安晚安", "魏如萱")
	p4 := testParent("unknown/untitled.md", "", "")
	p4.Meta = core.Metadata{}.WithDefaults()

	c := New([]*core.ParentDocument{p1, p2, p3, p4}, nil)

	// Deduplicated, sentinel excluded, first-encountered order.
	assert.Equal(t, []string{"张悬", "魏如萱"}, c.FieldValues("artist"))
	assert.Equal(t, []string{"宝贝", "玫瑰色的你", "晚安晚安"}, c.FieldValues("title"))
	assert.Nil(t, c.FieldValues("album"))
	assert.Nil(t, c.FieldValues("bogus"))
}

func TestCorpusStatistics(t *testing.T) {
	p1 := testParent("张悬/宝贝.md", "宝贝", "张悬")
	p1.Meta.Region = "台湾"
	p2 := testParent("张悬/玫瑰色的你.md", "玫瑰色的你", "张悬")
	p2.Meta.Region = "台湾"
	p3 := testParent("魏如萱/晚安晚安.md", "晚安晚安", "魏如萱")

	chunks := []*core.ChildChunk{
		{ID: "a", ParentID: p1.ID, Content: "四个字符"},
		{ID: "b", ParentID: p2.ID, Content: "六个字符内容"},
	}

	stats := New([]*core.ParentDocument{p1, p2, p3}, chunks).Statistics()

	assert.Equal(t, 3, stats.TotalParents)
	assert.Equal(t, 2, stats.TotalChunks)
	assert.Equal(t, 2, stats.Artists["张悬"])
	assert.Equal(t, 1, stats.Artists["魏如萱"])
	assert.Equal(t, 2, stats.Regions["台湾"])
	assert.Equal(t, 1, stats.Regions[core.Unknown])
	assert.InDelta(t, 5.0, stats.AvgChunkSize, 0.001)
}

func TestCorpusStatisticsEmpty(t *testing.T) {
	stats := New(nil, nil).Statistics()
	assert.Equal(t, 0, stats.TotalParents)
	assert.Equal(t, 0, stats.TotalChunks)
	assert.Zero(t, stats.AvgChunkSize)
}

func TestExportMetadata(t *testing.T) {
	p := testParent("张悬/宝贝.md", "宝贝", "张悬")
	p.Meta.Lyrics = "我的宝贝宝贝"

	c := New([]*core.ParentDocument{p}, nil)
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, c.ExportMetadata(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "宝贝", out[0]["title"])
	assert.Equal(t, "张悬", out[0]["artist"])
	assert.Equal(t, float64(6), out[0]["lyrics_length"])
	assert.Equal(t, "张悬/宝贝.md", out[0]["source"])
}
