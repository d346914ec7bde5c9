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


package lyricmind

import "errors"

var (
	// ErrCorpusRequired indicates a nil corpus was provided.
	ErrCorpusRequired = errors.New("corpus required")

	// ErrEngineRequired indicates a nil search engine was provided.
	ErrEngineRequired = errors.New("search engine required")

	// ErrProviderRequired indicates a nil AI provider was provided.
	ErrProviderRequired = errors.New("ai provider required")

	// ErrNoKnowledgeBase indicates the knowledge base has not been built
	// or loaded yet.
	ErrNoKnowledgeBase = errors.New("knowledge base not built")
)
