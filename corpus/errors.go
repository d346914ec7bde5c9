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

import "errors"

var (
	// ErrDataPathRequired is returned when a loader is created without a data path.
	ErrDataPathRequired = errors.New("data path required")

	// ErrDataPathNotFound is returned when the data path does not exist.
	ErrDataPathNotFound = errors.New("data path not found")

	// ErrNoDocuments is returned when chunking is requested before any
	// parent documents have been loaded.
	ErrNoDocuments = errors.New("no parent documents loaded")
)
