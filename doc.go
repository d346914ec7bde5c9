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


// Package lyricmind wires the retrieval-augmented question answering
// system for Mandarin song lyrics together: persistent storage, the
// hybrid search engine, AI services and the query orchestrator.
//
// A System owns the full stack. BuildKnowledgeBase ingests a directory
// of markdown song documents into badger; LoadKnowledgeBase restores a
// previously built snapshot. Answer and AnswerStream run a question
// through the orchestrator, which classifies it into a route, rewrites
// and decomposes it, retrieves chunks per sub-query, aggregates them to
// parent documents and hands those to the answer generator.
package lyricmind
