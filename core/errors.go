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

import "errors"

// Domain validation errors
var (
	// ErrInvalidParentDocument indicates a ParentDocument failed validation.
	ErrInvalidParentDocument = errors.New("invalid parent document")

	// ErrInvalidChunk indicates a ChildChunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrMissingChunkID indicates the chunk has no id.
	ErrMissingChunkID = errors.New("chunk id cannot be empty")

	// ErrMissingParentID indicates the chunk does not reference a parent.
	ErrMissingParentID = errors.New("parent id cannot be zero")

	// ErrNegativeChunkIndex indicates a chunk index below zero.
	ErrNegativeChunkIndex = errors.New("chunk index cannot be negative")
)
