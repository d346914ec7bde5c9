package badger

import (
	"fmt"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// Key prefixes for different data types
const (
	documentPrefix = "docrec"
	chunkPrefix    = "chkrec"
)

// makeDocumentKey generates a key for a parent document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeChunkKey generates a key for a child chunk by ID.
func makeChunkKey(id string) []byte {
	return []byte(chunkPrefix + ":" + id)
}
