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


// Package ai provides abstractions for the AI services used by Lyric Mind.
//
// This package defines interfaces for every external model call the system
// makes: text embeddings, route classification, query rewriting, sub-query
// decomposition and answer generation. The retrieval core and the
// orchestrator depend only on these abstractions, never on a concrete
// model client.
//
// # Design Principles
//
// The package is designed around explicit capability interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Classifier: assigns a query one of the closed route labels
//   - Rewriter: normalizes vague queries for retrieval
//   - Decomposer: splits a query into independent sub-queries
//   - Generator: composes the final natural-language answer
//   - DenseSearcher: the opaque scored nearest-neighbor index
//   - Provider: aggregates the model-backed services for initialization
//
// Each service is treated as a pure function with no retry policy of its
// own; a timeout or malformed response surfaces as a single orchestration
// failure in the caller.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//     through langchaingo
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider) return interface types to
// enforce abstraction; mock constructors return concrete types so tests
// can inject behavior through function fields and assert call counts.
package ai
