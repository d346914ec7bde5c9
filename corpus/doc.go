// Package corpus builds and holds the searchable song corpus.
//
// The Loader walks a directory of markdown song files and produces parent
// documents with metadata extracted from their section headers. The Chunker
// slices each parent into child chunks for indexing, preferring header-aware
// splits, then the lyrics section, then fixed-size character windows. The
// Corpus type is an immutable snapshot of parents and chunks that supports
// parent lookup, filter-field vocabularies, statistics, and aggregation of
// child chunk hits back into ranked parent documents.
package corpus
