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


package storage

import (
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalDocument serializes a ParentDocument to bytes.
func MarshalDocument(doc *core.ParentDocument) []byte {
	buf := make([]byte, core.ParentDocumentMUS.Size(*doc))
	core.ParentDocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a ParentDocument from bytes.
func UnmarshalDocument(data []byte) (*core.ParentDocument, error) {
	doc, _, err := core.ParentDocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalChunk serializes a ChildChunk to bytes.
func MarshalChunk(chunk *core.ChildChunk) []byte {
	buf := make([]byte, core.ChildChunkMUS.Size(*chunk))
	core.ChildChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a ChildChunk from bytes.
func UnmarshalChunk(data []byte) (*core.ChildChunk, error) {
	chunk, _, err := core.ChildChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}
