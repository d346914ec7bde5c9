package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for parent documents.
// It is derived deterministically from the document's relative source path,
// so re-ingesting the same corpus yields the same ids.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Unknown is the sentinel value for metadata fields absent from a source document.
const Unknown = "unknown"

// Metadata describes a song document. Every field is always present;
// fields missing from the source text hold the Unknown sentinel
// (Lyrics defaults to the empty string instead).
type Metadata struct {
	Title  string
	Artist string
	Album  string
	Year   string
	Region string
	Type   string
	Lyrics string
}

// FilterFields lists the metadata fields usable in a FilterSet,
// in the fixed priority order used by filter inference.
var FilterFields = []string{"artist", "album", "region", "year", "title"}

// Field returns the value of a filterable metadata field by name.
// Unknown field names return the empty string.
func (m Metadata) Field(name string) string {
	switch name {
	case "title":
		return m.Title
	case "artist":
		return m.Artist
	case "album":
		return m.Album
	case "year":
		return m.Year
	case "region":
		return m.Region
	case "type":
		return m.Type
	case "lyrics":
		return m.Lyrics
	}
	return ""
}

// WithDefaults returns a copy of the metadata with every empty field
// replaced by the Unknown sentinel. Lyrics is left as-is.
func (m Metadata) WithDefaults() Metadata {
	if m.Title == "" {
		m.Title = Unknown
	}
	if m.Artist == "" {
		m.Artist = Unknown
	}
	if m.Album == "" {
		m.Album = Unknown
	}
	if m.Year == "" {
		m.Year = Unknown
	}
	if m.Region == "" {
		m.Region = Unknown
	}
	if m.Type == "" {
		m.Type = Unknown
	}
	return m
}

// ParentDocument is one complete corpus item (one song): the full raw
// markdown text plus the metadata extracted from it.
type ParentDocument struct {
	ID      ID
	Source  string // path relative to the corpus root
	Content string
	Meta    Metadata
}

// ChildChunk is one retrievable passage sliced from a parent document.
// Chunks inherit the parent's metadata and carry their position among
// siblings. The Vector field is populated during ingestion.
type ChildChunk struct {
	ID       string // uuid, never reused
	ParentID ID
	Index    int // zero-based position among siblings
	Content  string
	Meta     Metadata
	Vector   []float32
}

// SimilarityHit is a raw hit returned by a dense search adapter:
// a chunk id with its similarity score.
type SimilarityHit struct {
	ChunkID string
	Score   float32
}

// ScoredChunk pairs a chunk with a search score. Score semantics depend on
// the producing operation (similarity, lexical relevance, or fused rank
// score) and must not be compared across un-fused result sets.
type ScoredChunk struct {
	Chunk *ChildChunk
	Score float64
}

// FilterSet maps a metadata field name to a single exact value.
// It is built and consumed within one orchestration step, never persisted.
type FilterSet map[string]string

// Matches reports whether the chunk's metadata exactly matches every
// field of the filter set. An empty filter set matches everything.
func (f FilterSet) Matches(c *ChildChunk) bool {
	for field, want := range f {
		if c.Meta.Field(field) != want {
			return false
		}
	}
	return true
}
