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


package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted domain types. Hand-written against
// the mus-go primitives; field order is part of the storage format and
// must not change between releases.
var (
	IDMUS             = idSer{}
	MetadataMUS       = metadataSer{}
	ParentDocumentMUS = parentDocumentSer{}
	ChildChunkMUS     = childChunkSer{}

	vectorMUS = ord.NewSliceSer[float32](varint.Float32)
)

var (
	_ mus.Serializer[ID]             = IDMUS
	_ mus.Serializer[Metadata]       = MetadataMUS
	_ mus.Serializer[ParentDocument] = ParentDocumentMUS
	_ mus.Serializer[ChildChunk]     = ChildChunkMUS
)

type idSer struct{}

func (idSer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idSer) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type metadataSer struct{}

func (metadataSer) Marshal(m Metadata, bs []byte) (n int) {
	n = ord.String.Marshal(m.Title, bs)
	n += ord.String.Marshal(m.Artist, bs[n:])
	n += ord.String.Marshal(m.Album, bs[n:])
	n += ord.String.Marshal(m.Year, bs[n:])
	n += ord.String.Marshal(m.Region, bs[n:])
	n += ord.String.Marshal(m.Type, bs[n:])
	n += ord.String.Marshal(m.Lyrics, bs[n:])
	return n
}

func (metadataSer) Unmarshal(bs []byte) (m Metadata, n int, err error) {
	fields := []*string{&m.Title, &m.Artist, &m.Album, &m.Year, &m.Region, &m.Type, &m.Lyrics}
	for _, field := range fields {
		var n1 int
		*field, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (metadataSer) Size(m Metadata) int {
	return ord.String.Size(m.Title) +
		ord.String.Size(m.Artist) +
		ord.String.Size(m.Album) +
		ord.String.Size(m.Year) +
		ord.String.Size(m.Region) +
		ord.String.Size(m.Type) +
		ord.String.Size(m.Lyrics)
}

func (metadataSer) Skip(bs []byte) (n int, err error) {
	for i := 0; i < 7; i++ {
		var n1 int
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

type parentDocumentSer struct{}

func (parentDocumentSer) Marshal(d ParentDocument, bs []byte) (n int) {
	n = IDMUS.Marshal(d.ID, bs)
	n += ord.String.Marshal(d.Source, bs[n:])
	n += ord.String.Marshal(d.Content, bs[n:])
	n += MetadataMUS.Marshal(d.Meta, bs[n:])
	return n
}

func (parentDocumentSer) Unmarshal(bs []byte) (d ParentDocument, n int, err error) {
	var n1 int
	d.ID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	d.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Meta, n1, err = MetadataMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (parentDocumentSer) Size(d ParentDocument) int {
	return IDMUS.Size(d.ID) +
		ord.String.Size(d.Source) +
		ord.String.Size(d.Content) +
		MetadataMUS.Size(d.Meta)
}

func (parentDocumentSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = MetadataMUS.Skip(bs[n:])
	n += n1
	return
}

type childChunkSer struct{}

func (childChunkSer) Marshal(c ChildChunk, bs []byte) (n int) {
	n = ord.String.Marshal(c.ID, bs)
	n += IDMUS.Marshal(c.ParentID, bs[n:])
	n += varint.Int.Marshal(c.Index, bs[n:])
	n += ord.String.Marshal(c.Content, bs[n:])
	n += MetadataMUS.Marshal(c.Meta, bs[n:])
	n += vectorMUS.Marshal(c.Vector, bs[n:])
	return n
}

func (childChunkSer) Unmarshal(bs []byte) (c ChildChunk, n int, err error) {
	var n1 int
	c.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	c.ParentID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Index, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Meta, n1, err = MetadataMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (childChunkSer) Size(c ChildChunk) int {
	return ord.String.Size(c.ID) +
		IDMUS.Size(c.ParentID) +
		varint.Int.Size(c.Index) +
		ord.String.Size(c.Content) +
		MetadataMUS.Size(c.Meta) +
		vectorMUS.Size(c.Vector)
}

func (childChunkSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = MetadataMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}
