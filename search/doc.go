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


// Package search implements hybrid retrieval over the song corpus.
//
// The Engine combines two retrieval signals: dense similarity search
// through an external adapter and a local lexical relevance ranking over
// chunk content. Results from both signals are merged with reciprocal
// rank fusion, which rewards chunks that both signals agree on.
// Filtered search runs the same pipeline over a metadata-restricted
// candidate pool without falling back to the full corpus.
package search
