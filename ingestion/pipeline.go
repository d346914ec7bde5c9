package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
	"github.com/garfieldra/Mandarin-Lyric-Mind/storage"
)

// defaultBatchSize is the number of chunks embedded per worker task.
const defaultBatchSize = 16

// Pipeline orchestrates the ingestion of song documents into the
// knowledge base: load, chunk, embed, persist.
type Pipeline struct {
	documents storage.DocumentRepository
	chunks    storage.ChunkRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	chunkSize int
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of chunks embedded per worker task.
// Default is 16.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = defaultBatchSize
		}
		p.batchSize = size
		return nil
	}
}

// WithChunkSize sets the character window of the chunking fallback.
// Default is corpus.DefaultChunkSize.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = corpus.DefaultChunkSize
		}
		p.chunkSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	chunks storage.ChunkRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if chunks == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		chunks:    chunks,
		embedder:  embedder,
		pool:      pool,
		chunkSize: corpus.DefaultChunkSize,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest builds a fresh knowledge base from the markdown files under
// dataPath. It loads parents, chunks them, embeds every chunk, and
// replaces the stored snapshot wholesale. Any embedding failure aborts
// the ingestion before the stored snapshot is touched. Returns the new
// corpus snapshot.
func (p *Pipeline) Ingest(ctx context.Context, dataPath string) (*corpus.Corpus, error) {
	loader, err := corpus.NewLoader(dataPath, corpus.WithLoaderLogger(p.logger))
	if err != nil {
		return nil, err
	}
	parents, err := loader.Load()
	if err != nil {
		return nil, err
	}

	chunker, err := corpus.NewChunker(
		corpus.WithChunkSize(p.chunkSize),
		corpus.WithChunkerLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}
	chunks, err := chunker.Chunk(parents)
	if err != nil {
		return nil, err
	}

	if err := p.embedChunks(ctx, chunks); err != nil {
		return nil, err
	}

	if err := p.persist(ctx, parents, chunks); err != nil {
		return nil, err
	}

	p.logger.Info("knowledge base built", "parents", len(parents), "chunks", len(chunks))
	return corpus.New(parents, chunks), nil
}

// embedChunks generates embeddings for every chunk, batched across the
// worker pool. The first error aborts the whole batch.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []*core.ChildChunk) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(chunks); start += p.batchSize {
		end := start + p.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, chunk := range batch {
				texts[i] = chunk.Content
			}

			vectors, err := p.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				p.logger.Error("error generating embeddings", "batch", len(texts), "err", err)
				setErr(err)
				return
			}
			if len(vectors) != len(batch) {
				setErr(fmt.Errorf("embedding result mismatch. expected %d, received %d",
					len(batch), len(vectors)))
				return
			}

			for i, vector := range vectors {
				batch[i].Vector = vector
			}
		})
		if err != nil {
			wg.Done()
			return err
		}
	}

	wg.Wait()
	return firstErr
}

// persist replaces the stored snapshot with the new parents and chunks.
func (p *Pipeline) persist(ctx context.Context, parents []*core.ParentDocument, chunks []*core.ChildChunk) error {
	if err := p.documents.Clear(ctx); err != nil {
		return err
	}
	if err := p.chunks.Clear(ctx); err != nil {
		return err
	}
	if err := p.documents.AddDocuments(ctx, parents...); err != nil {
		return err
	}
	return p.chunks.AddChunks(ctx, chunks...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
