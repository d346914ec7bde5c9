// Copyright 2025 The Mandarin Lyric Mind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package corpus

import (
	"encoding/json"
	"os"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// Corpus is an immutable snapshot of parent documents and their child
// chunks. It is built once after loading and chunking and only read
// afterward; re-ingestion produces a new snapshot wholesale.
type Corpus struct {
	parents []*core.ParentDocument
	chunks  []*core.ChildChunk
	byID    map[core.ID]*core.ParentDocument
	byChunk map[string]*core.ChildChunk
}

// New creates a corpus snapshot. When several parents share an id, the
// first one wins for lookups.
func New(parents []*core.ParentDocument, chunks []*core.ChildChunk) *Corpus {
	c := &Corpus{
		parents: parents,
		chunks:  chunks,
		byID:    make(map[core.ID]*core.ParentDocument, len(parents)),
		byChunk: make(map[string]*core.ChildChunk, len(chunks)),
	}
	for _, p := range parents {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
	}
	for _, ch := range chunks {
		if _, ok := c.byChunk[ch.ID]; !ok {
			c.byChunk[ch.ID] = ch
		}
	}
	return c
}

// Parents returns all parent documents in load order.
func (c *Corpus) Parents() []*core.ParentDocument {
	return c.parents
}

// Chunks returns all child chunks in emission order.
func (c *Corpus) Chunks() []*core.ChildChunk {
	return c.chunks
}

// ParentByID looks up a parent document by id.
func (c *Corpus) ParentByID(id core.ID) (*core.ParentDocument, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ChunkByID looks up a child chunk by id.
func (c *Corpus) ChunkByID(id string) (*core.ChildChunk, bool) {
	ch, ok := c.byChunk[id]
	return ch, ok
}

// FieldValues returns the distinct non-sentinel values observed across
// all parents for a filterable metadata field, in first-encountered
// order. Unknown field names return nil.
func (c *Corpus) FieldValues(field string) []string {
	var values []string
	seen := make(map[string]bool)
	for _, p := range c.parents {
		v := p.Meta.Field(field)
		if v == "" || v == core.Unknown || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Statistics summarizes the corpus.
type Statistics struct {
	TotalParents int
	TotalChunks  int
	Artists      map[string]int
	Regions      map[string]int
	Years        map[string]int
	Albums       map[string]int
	AvgChunkSize float64 // mean chunk content length in characters
}

// Statistics computes per-field counts over the parents and the mean
// chunk size.
func (c *Corpus) Statistics() *Statistics {
	stats := &Statistics{
		TotalParents: len(c.parents),
		TotalChunks:  len(c.chunks),
		Artists:      make(map[string]int),
		Regions:      make(map[string]int),
		Years:        make(map[string]int),
		Albums:       make(map[string]int),
	}

	for _, p := range c.parents {
		stats.Artists[p.Meta.Artist]++
		stats.Regions[p.Meta.Region]++
		stats.Years[p.Meta.Year]++
		stats.Albums[p.Meta.Album]++
	}

	if len(c.chunks) > 0 {
		total := 0
		for _, ch := range c.chunks {
			total += len([]rune(ch.Content))
		}
		stats.AvgChunkSize = float64(total) / float64(len(c.chunks))
	}

	return stats
}

// metadataExport is the JSON shape of one parent in ExportMetadata output.
type metadataExport struct {
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	Year         string `json:"year"`
	Region       string `json:"region"`
	Type         string `json:"type"`
	LyricsLength int    `json:"lyrics_length"`
	Source       string `json:"source"`
}

// ExportMetadata writes the parents' metadata to path as a JSON list.
func (c *Corpus) ExportMetadata(path string) error {
	out := make([]metadataExport, len(c.parents))
	for i, p := range c.parents {
		out[i] = metadataExport{
			Title:        p.Meta.Title,
			Artist:       p.Meta.Artist,
			Album:        p.Meta.Album,
			Year:         p.Meta.Year,
			Region:       p.Meta.Region,
			Type:         p.Meta.Type,
			LyricsLength: len([]rune(p.Meta.Lyrics)),
			Source:       p.Source,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
