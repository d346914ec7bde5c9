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


// Package storage provides the persistence abstraction for the knowledge base.
//
// Repository interfaces decouple the ingestion pipeline and the retrieval
// engine from the concrete backend, so alternative backends can be used
// interchangeably. The BadgerDB implementation lives in storage/badger.
//
// Parent documents and child chunks (including their embedding vectors)
// are serialized with the MUS binary format; see the Marshal/Unmarshal
// helpers in this package.
//
// All repository implementations must be thread-safe. Every method
// accepts a context.Context for cancellation and timeout support.
package storage
