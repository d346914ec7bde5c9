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

import (
	"context"
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/ai/openai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
	"github.com/garfieldra/Mandarin-Lyric-Mind/ingestion"
	"github.com/garfieldra/Mandarin-Lyric-Mind/search"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage/badger"
)

// System owns the full question answering stack: badger storage, AI
// services, the hybrid search engine and the query orchestrator. The
// knowledge base must be built or loaded before questions can be asked.
type System struct {
	config    *Config
	backend   *badger.Backend
	documents storage.DocumentRepository
	chunks    storage.ChunkRepository
	provider  ai.Provider
	dense     ai.DenseSearcher
	corpus    *corpus.Corpus
	engine    *search.Engine
	orch      *Orchestrator
	logger    *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	provider ai.Provider
	inMemory bool
}

// WithAIProvider supplies a pre-built AI provider instead of the
// OpenAI-compatible one configured through Config.AI.
func WithAIProvider(provider ai.Provider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps the knowledge base in memory instead of on
// disk. Intended for tests.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// NewSystem opens the storage backend and initializes the AI services.
// A nil config uses DefaultConfig.
func NewSystem(config *Config, opts ...SystemOption) (*System, error) {
	// Apply options
	options := &systemOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(config.DBPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create document repository
	documents, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create chunk repository
	chunks, err := badger.NewChunkRepository(backend)
	if err != nil {
		documents.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(config.AI)
		if err != nil {
			chunks.Close()
			documents.Close()
			backend.Close()
			return nil, err
		}
	}

	// Create the dense searcher over the stored chunks
	dense, err := badger.NewDenseSearcher(chunks, provider.Embedder())
	if err != nil {
		provider.Close()
		chunks.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	return &System{
		config:    config,
		backend:   backend,
		documents: documents,
		chunks:    chunks,
		provider:  provider,
		dense:     dense,
		logger:    slog.Default(),
	}, nil
}

// BuildKnowledgeBase ingests the markdown documents under the
// configured data path, replacing any stored snapshot wholesale, and
// readies the system for questions.
func (s *System) BuildKnowledgeBase(ctx context.Context) error {
	pipeline, err := ingestion.NewPipeline(
		s.documents,
		s.chunks,
		s.provider.Embedder(),
		ingestion.WithChunkSize(s.config.ChunkSize),
		ingestion.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	c, err := pipeline.Ingest(ctx, s.config.DataPath)
	if err != nil {
		return err
	}

	stats := c.Statistics()
	s.logger.Info("knowledge base built",
		"parents", stats.TotalParents,
		"chunks", stats.TotalChunks,
		"artists", len(stats.Artists),
		"regions", len(stats.Regions))

	return s.install(c)
}

// LoadKnowledgeBase restores the stored snapshot and readies the system
// for questions. Returns ErrNoKnowledgeBase if nothing has been
// ingested yet.
func (s *System) LoadKnowledgeBase(ctx context.Context) error {
	parents, err := s.documents.AllDocuments(ctx)
	if err != nil {
		return err
	}
	if len(parents) == 0 {
		return ErrNoKnowledgeBase
	}

	chunks, err := s.chunks.AllChunks(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("knowledge base loaded", "parents", len(parents), "chunks", len(chunks))
	return s.install(corpus.New(parents, chunks))
}

// install wires the engine and orchestrator around a corpus snapshot.
func (s *System) install(c *corpus.Corpus) error {
	engine, err := search.NewEngine(c, s.dense,
		search.WithFusionK(s.config.FusionK),
		search.WithLogger(s.logger))
	if err != nil {
		return err
	}

	orch, err := NewOrchestrator(c, engine, s.provider,
		WithOrchestratorTopK(s.config.TopK),
		WithOrchestratorTopCompareK(s.config.TopCompareK),
		WithOrchestratorLogger(s.logger))
	if err != nil {
		return err
	}

	s.corpus = c
	s.engine = engine
	s.orch = orch
	return nil
}

// Answer runs a question through the orchestrator and returns the
// complete answer.
func (s *System) Answer(ctx context.Context, question string) (string, error) {
	if s.orch == nil {
		return "", ErrNoKnowledgeBase
	}
	return s.orch.Answer(ctx, question)
}

// AnswerStream behaves like Answer but delivers fragments through the
// stream callback as they are produced.
func (s *System) AnswerStream(ctx context.Context, question string, stream ai.StreamFunc) (string, error) {
	if s.orch == nil {
		return "", ErrNoKnowledgeBase
	}
	return s.orch.AnswerStream(ctx, question, stream)
}

// SearchByArtist returns the distinct titles retrieved for one artist.
// An empty query searches on the artist name itself.
func (s *System) SearchByArtist(ctx context.Context, artist, query string) ([]string, error) {
	if s.engine == nil {
		return nil, ErrNoKnowledgeBase
	}

	searchQuery := query
	if searchQuery == "" {
		searchQuery = artist
	}

	scored, err := s.engine.FilteredSearch(ctx, searchQuery, core.FilterSet{"artist": artist}, s.config.TopK)
	if err != nil {
		return nil, err
	}

	chunks := make([]*core.ChildChunk, 0, len(scored))
	for _, sc := range scored {
		chunks = append(chunks, sc.Chunk)
	}

	var titles []string
	seen := make(map[string]bool)
	for _, doc := range s.corpus.AggregateParents(chunks) {
		title := doc.Meta.Title
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}
	return titles, nil
}

// Statistics summarizes the current corpus snapshot.
func (s *System) Statistics() (*corpus.Statistics, error) {
	if s.corpus == nil {
		return nil, ErrNoKnowledgeBase
	}
	return s.corpus.Statistics(), nil
}

// ExportMetadata writes the parents' metadata as JSON to path.
func (s *System) ExportMetadata(path string) error {
	if s.corpus == nil {
		return ErrNoKnowledgeBase
	}
	return s.corpus.ExportMetadata(path)
}

// Corpus returns the current corpus snapshot, or nil before the
// knowledge base is built or loaded.
func (s *System) Corpus() *corpus.Corpus {
	return s.corpus
}

func (s *System) DocumentRepository() storage.DocumentRepository {
	return s.documents
}

func (s *System) ChunkRepository() storage.ChunkRepository {
	return s.chunks
}

func (s *System) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := s.chunks.Close(); err != nil {
		s.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := s.documents.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
