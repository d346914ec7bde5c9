package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParent() *ParentDocument {
	return &ParentDocument{
		ID:      IDFromContent("张悬/宝贝.md"),
		Source:  "张悬/宝贝.md",
		Content: "## 歌名\n宝贝\n## 歌词\n我的宝贝",
		Meta:    Metadata{Title: "宝贝", Artist: "张悬"}.WithDefaults(),
	}
}

func validChunk() *ChildChunk {
	return &ChildChunk{
		ID:       "3f1b2a60-6a7e-4c21-9f53-2a2b9a3d1f00",
		ParentID: IDFromContent("张悬/宝贝.md"),
		Index:    0,
		Content:  "我的宝贝",
		Meta:     Metadata{Title: "宝贝", Artist: "张悬"}.WithDefaults(),
	}
}

func TestValidateParentDocument(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateParentDocument(validParent()))
	})

	t.Run("nil", func(t *testing.T) {
		err := ValidateParentDocument(nil)
		assert.ErrorIs(t, err, ErrInvalidParentDocument)
	})

	t.Run("zero id", func(t *testing.T) {
		doc := validParent()
		doc.ID = 0
		err := ValidateParentDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidParentDocument)
		assert.ErrorIs(t, err, ErrMissingParentID)
	})

	t.Run("empty source", func(t *testing.T) {
		doc := validParent()
		doc.Source = ""
		assert.ErrorIs(t, ValidateParentDocument(doc), ErrInvalidParentDocument)
	})

	t.Run("empty content is allowed", func(t *testing.T) {
		doc := validParent()
		doc.Content = ""
		assert.NoError(t, ValidateParentDocument(doc))
	})
}

func TestValidateChildChunk(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateChildChunk(validChunk()))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChildChunk(nil), ErrInvalidChunk)
	})

	t.Run("missing id", func(t *testing.T) {
		c := validChunk()
		c.ID = ""
		err := ValidateChildChunk(c)
		assert.ErrorIs(t, err, ErrInvalidChunk)
		assert.ErrorIs(t, err, ErrMissingChunkID)
	})

	t.Run("missing parent id", func(t *testing.T) {
		c := validChunk()
		c.ParentID = 0
		assert.ErrorIs(t, ValidateChildChunk(c), ErrMissingParentID)
	})

	t.Run("negative index", func(t *testing.T) {
		c := validChunk()
		c.Index = -1
		assert.ErrorIs(t, ValidateChildChunk(c), ErrNegativeChunkIndex)
	})

	t.Run("whitespace-only content", func(t *testing.T) {
		c := validChunk()
		c.Content = "  \n\t "
		assert.ErrorIs(t, ValidateChildChunk(c), ErrEmptyContent)
	})

	t.Run("missing vector is allowed", func(t *testing.T) {
		c := validChunk()
		c.Vector = nil
		assert.NoError(t, ValidateChildChunk(c))
	})
}
