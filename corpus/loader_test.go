package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

func writeSong(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewLoader(t *testing.T) {
	t.Run("empty data path", func(t *testing.T) {
		_, err := NewLoader("")
		assert.ErrorIs(t, err, ErrDataPathRequired)
	})

	t.Run("valid", func(t *testing.T) {
		loader, err := NewLoader(t.TempDir())
		require.NoError(t, err)
		assert.NotNil(t, loader)
	})
}

func TestLoaderMissingPath(t *testing.T) {
	loader, err := NewLoader(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	_, err = loader.Load()
	assert.ErrorIs(t, err, ErrDataPathNotFound)
}

func TestLoaderMetadataExtraction(t *testing.T) {
	root := t.TempDir()
	writeSong(t, root, "张悬/宝贝.md", `## 歌名
宝贝

## 歌手
张悬

## 收录专辑
My Life Will...

## 发行时间
2006

## 地区
台湾

## 歌词
我的宝贝宝贝
`)

	loader, err := NewLoader(root)
	require.NoError(t, err)

	parents, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, parents, 1)

	p := parents[0]
	assert.Equal(t, "张悬/宝贝.md", p.Source)
	assert.Equal(t, core.IDFromContent("张悬/宝贝.md"), p.ID)
	assert.Equal(t, "宝贝", p.Meta.Title)
	assert.Equal(t, "张悬", p.Meta.Artist)
	assert.Equal(t, "My Life Will...", p.Meta.Album)
	assert.Equal(t, "2006", p.Meta.Year)
	assert.Equal(t, "台湾", p.Meta.Region)
	assert.Equal(t, core.Unknown, p.Meta.Type)
	assert.Contains(t, p.Meta.Lyrics, "我的宝贝宝贝")
}

func TestLoaderFallbackMetadata(t *testing.T) {
	root := t.TempDir()
	// No header sections at all: title comes from the file name and
	// artist from the parent directory.
	writeSong(t, root, "魏如萱/晚安晚安.md", "纯文本歌词，没有任何结构。\n")

	loader, err := NewLoader(root)
	require.NoError(t, err)

	parents, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, parents, 1)

	p := parents[0]
	assert.Equal(t, "晚安晚安", p.Meta.Title)
	assert.Equal(t, "魏如萱", p.Meta.Artist)
	assert.Equal(t, core.Unknown, p.Meta.Album)
	assert.Equal(t, core.Unknown, p.Meta.Year)
	assert.Equal(t, core.Unknown, p.Meta.Region)
	assert.Equal(t, "", p.Meta.Lyrics)
}

func TestLoaderStableParentIDs(t *testing.T) {
	root := t.TempDir()
	writeSong(t, root, "张悬/宝贝.md", "## 歌词\n我的宝贝宝贝\n")

	loader, err := NewLoader(root)
	require.NoError(t, err)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestLoaderIgnoresNonMarkdown(t *testing.T) {
	root := t.TempDir()
	writeSong(t, root, "张悬/宝贝.md", "## 歌词\n我的宝贝宝贝\n")
	writeSong(t, root, "张悬/notes.txt", "not a song")

	loader, err := NewLoader(root)
	require.NoError(t, err)

	parents, err := loader.Load()
	require.NoError(t, err)
	assert.Len(t, parents, 1)
}
