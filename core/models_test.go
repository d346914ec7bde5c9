package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("张悬/宝贝.md")
		id2 := IDFromContent("张悬/宝贝.md")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("张悬/宝贝.md")
		id2 := IDFromContent("魏如萱/还是要相信爱情啊混蛋们.md")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content", func(t *testing.T) {
		// An empty path still hashes to a stable, non-trivial value.
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestMetadataWithDefaults(t *testing.T) {
	t.Run("fills empty fields with sentinel", func(t *testing.T) {
		m := Metadata{Title: "宝贝"}.WithDefaults()
		assert.Equal(t, "宝贝", m.Title)
		assert.Equal(t, Unknown, m.Artist)
		assert.Equal(t, Unknown, m.Album)
		assert.Equal(t, Unknown, m.Year)
		assert.Equal(t, Unknown, m.Region)
		assert.Equal(t, Unknown, m.Type)
	})

	t.Run("lyrics stays empty", func(t *testing.T) {
		m := Metadata{}.WithDefaults()
		assert.Empty(t, m.Lyrics)
	})

	t.Run("populated fields untouched", func(t *testing.T) {
		in := Metadata{
			Title: "宝贝", Artist: "张悬", Album: "My Life Will...",
			Year: "2006", Region: "台湾", Type: "民谣", Lyrics: "我的宝贝",
		}
		assert.Equal(t, in, in.WithDefaults())
	})
}

func TestMetadataField(t *testing.T) {
	m := Metadata{
		Title: "玫瑰色的你", Artist: "张悬", Album: "神的游戏",
		Year: "2012", Region: "台湾", Type: "摇滚", Lyrics: "歌词",
	}

	assert.Equal(t, "玫瑰色的你", m.Field("title"))
	assert.Equal(t, "张悬", m.Field("artist"))
	assert.Equal(t, "神的游戏", m.Field("album"))
	assert.Equal(t, "2012", m.Field("year"))
	assert.Equal(t, "台湾", m.Field("region"))
	assert.Equal(t, "摇滚", m.Field("type"))
	assert.Equal(t, "歌词", m.Field("lyrics"))
	assert.Empty(t, m.Field("no-such-field"))
}

func TestFilterSetMatches(t *testing.T) {
	chunk := &ChildChunk{
		ID:       "c1",
		ParentID: 1,
		Content:  "歌词内容",
		Meta:     Metadata{Artist: "张悬", Album: "神的游戏", Region: "台湾"},
	}

	t.Run("empty filter matches", func(t *testing.T) {
		assert.True(t, FilterSet{}.Matches(chunk))
	})

	t.Run("all fields match", func(t *testing.T) {
		f := FilterSet{"artist": "张悬", "region": "台湾"}
		assert.True(t, f.Matches(chunk))
	})

	t.Run("one field mismatch rejects", func(t *testing.T) {
		f := FilterSet{"artist": "张悬", "album": "城市"}
		assert.False(t, f.Matches(chunk))
	})

	t.Run("exact match only", func(t *testing.T) {
		// Substring of the stored value is not a match.
		f := FilterSet{"album": "神的"}
		assert.False(t, f.Matches(chunk))
	})
}
