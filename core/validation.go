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
	"fmt"
	"strings"
)

// ValidateParentDocument validates a ParentDocument according to domain rules.
//
// Validation rules:
//   - ID must be non-zero (derived from the source path)
//   - Source must not be empty
//
// NOT validated:
//   - Content (an empty parent simply produces no chunks)
//   - Metadata fields (sentinel defaults are applied at load time)
func ValidateParentDocument(doc *ParentDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidParentDocument)
	}

	if doc.ID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParentDocument, ErrMissingParentID)
	}

	if doc.Source == "" {
		return fmt.Errorf("%w: source path cannot be empty", ErrInvalidParentDocument)
	}

	return nil
}

// ValidateChildChunk validates a ChildChunk according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - ParentID must be non-zero
//   - Index must not be negative
//   - Content must be non-empty after trimming
//
// NOT validated (populated by ingestion):
//   - Vector (empty until the embedding pass runs)
func ValidateChildChunk(chunk *ChildChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrMissingChunkID)
	}

	if chunk.ParentID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrMissingParentID)
	}

	if chunk.Index < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativeChunkIndex)
	}

	if strings.TrimSpace(chunk.Content) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	return nil
}
