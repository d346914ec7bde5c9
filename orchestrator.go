package lyricmind

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
	"github.com/garfieldra/Mandarin-Lyric-Mind/search"
)

// noResultsAnswer is returned when retrieval finds no parent documents.
// The generator is never consulted in that case.
const noResultsAnswer = "抱歉，没有找到相关的歌曲信息。请尝试其他歌曲名称或关键词。"

const (
	// maxListTitles is the largest list rendered in full.
	maxListTitles = 15

	// listPreviewTitles is how many titles an oversized list shows.
	listPreviewTitles = 5
)

// Orchestrator runs a question through the full answering state machine:
// route classification, query rewriting, sub-query decomposition, per
// sub-query retrieval, parent aggregation and answer generation.
type Orchestrator struct {
	corpus      *corpus.Corpus
	engine      *search.Engine
	classifier  ai.Classifier
	rewriter    ai.Rewriter
	decomposer  ai.Decomposer
	generator   ai.Generator
	topK        int
	topCompareK int
	logger      *slog.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator) error

// WithOrchestratorTopK sets the result count for list and general
// retrieval.
func WithOrchestratorTopK(k int) OrchestratorOption {
	return func(o *Orchestrator) error {
		if k < 1 {
			return fmt.Errorf("top k must be positive, got %d", k)
		}
		o.topK = k
		return nil
	}
}

// WithOrchestratorTopCompareK sets the per-group result count for
// compare retrieval.
func WithOrchestratorTopCompareK(k int) OrchestratorOption {
	return func(o *Orchestrator) error {
		if k < 1 {
			return fmt.Errorf("top compare k must be positive, got %d", k)
		}
		o.topCompareK = k
		return nil
	}
}

// WithOrchestratorLogger sets the logger.
func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates an orchestrator over a corpus snapshot, a
// search engine and an AI provider.
func NewOrchestrator(c *corpus.Corpus, engine *search.Engine, provider ai.Provider, opts ...OrchestratorOption) (*Orchestrator, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	o := &Orchestrator{
		corpus:      c,
		engine:      engine,
		classifier:  provider.Classifier(),
		rewriter:    provider.Rewriter(),
		decomposer:  provider.Decomposer(),
		generator:   provider.Generator(),
		topK:        10,
		topCompareK: 3,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Answer runs the question through the state machine and returns the
// complete answer.
func (o *Orchestrator) Answer(ctx context.Context, question string) (string, error) {
	return o.answer(ctx, question, nil)
}

// AnswerStream behaves like Answer but additionally delivers answer
// fragments through the stream callback as they are produced. Locally
// composed answers arrive as a single fragment.
func (o *Orchestrator) AnswerStream(ctx context.Context, question string, stream ai.StreamFunc) (string, error) {
	return o.answer(ctx, question, stream)
}

func (o *Orchestrator) answer(ctx context.Context, question string, stream ai.StreamFunc) (string, error) {
	route, err := o.classifier.ClassifyQuery(ctx, question)
	if err != nil {
		return "", fmt.Errorf("classifying query: %w", err)
	}
	o.logger.Info("query routed", "route", route, "question", question)

	// Direct questions skip retrieval entirely.
	if route == ai.RouteDirect {
		return o.generator.GenerateDirect(ctx, question, stream)
	}

	// List queries go to retrieval verbatim.
	rewritten := question
	if route != ai.RouteList {
		rewritten, err = o.rewriter.RewriteQuery(ctx, question)
		if err != nil {
			return "", fmt.Errorf("rewriting query: %w", err)
		}
		if rewritten != question {
			o.logger.Info("query rewritten", "from", question, "to", rewritten)
		}
	}

	subqueries, err := o.decomposer.ExtractSubqueries(ctx, rewritten)
	if err != nil {
		return "", fmt.Errorf("extracting sub-queries: %w", err)
	}
	if len(subqueries) == 0 {
		subqueries = []string{rewritten}
	}
	o.logger.Info("sub-queries identified", "count", len(subqueries))

	if route == ai.RouteCompare {
		return o.answerCompare(ctx, rewritten, subqueries, stream)
	}

	var pool []*core.ChildChunk
	for _, sub := range subqueries {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		searchQuery := sub
		if route == ai.RouteGeneral {
			searchQuery, err = o.rewriter.RewriteQuery(ctx, sub)
			if err != nil {
				return "", fmt.Errorf("rewriting sub-query: %w", err)
			}
		}

		chunks, err := o.retrieve(ctx, sub, searchQuery, o.topK)
		if err != nil {
			return "", err
		}
		pool = append(pool, chunks...)
	}
	o.logger.Info("chunks retrieved", "count", len(pool))

	docs := o.corpus.AggregateParents(pool)
	if len(docs) == 0 {
		return deliver(noResultsAnswer, stream), nil
	}

	if route == ai.RouteList {
		return deliver(formatListAnswer(docs), stream), nil
	}

	answer, err := o.generator.GenerateAnswer(ctx, question, docs, stream)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return answer, nil
}

// answerCompare retrieves each sub-query into its own group so the
// generator can contrast the comparison sides.
func (o *Orchestrator) answerCompare(ctx context.Context, question string, subqueries []string, stream ai.StreamFunc) (string, error) {
	groups := make([][]*core.ParentDocument, 0, len(subqueries))
	total := 0
	for _, sub := range subqueries {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		chunks, err := o.retrieve(ctx, sub, sub, o.topCompareK)
		if err != nil {
			return "", err
		}

		docs := o.corpus.AggregateParents(chunks)
		total += len(docs)
		groups = append(groups, docs)
	}

	if total == 0 {
		return deliver(noResultsAnswer, stream), nil
	}

	answer, err := o.generator.GenerateComparison(ctx, question, groups, stream)
	if err != nil {
		return "", fmt.Errorf("generating comparison: %w", err)
	}
	return answer, nil
}

// retrieve searches for one sub-query. Filters are inferred from the
// sub-query as decomposed, while the possibly rewritten searchQuery
// drives the actual search.
func (o *Orchestrator) retrieve(ctx context.Context, sub, searchQuery string, k int) ([]*core.ChildChunk, error) {
	filters := InferFilters(sub, o.corpus)

	var scored []core.ScoredChunk
	var err error
	if len(filters) > 0 {
		o.logger.Info("applying metadata filters", "filters", filters, "query", searchQuery)
		scored, err = o.engine.FilteredSearch(ctx, searchQuery, filters, k)
	} else {
		scored, err = o.engine.HybridSearch(ctx, searchQuery, k)
	}
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", searchQuery, err)
	}

	chunks := make([]*core.ChildChunk, 0, len(scored))
	for _, s := range scored {
		chunks = append(chunks, s.Chunk)
	}
	return chunks, nil
}

// formatListAnswer composes the enumeration answer from aggregated
// parent titles without calling the generator. A single title is a
// single line, up to maxListTitles become a numbered list, and longer
// lists show the first listPreviewTitles plus a remainder count.
func formatListAnswer(docs []*core.ParentDocument) string {
	var titles []string
	seen := make(map[string]bool)
	for _, doc := range docs {
		title := doc.Meta.Title
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}

	if len(titles) == 1 {
		return "为您推荐：" + titles[0]
	}

	var b strings.Builder
	b.WriteString("为您推荐以下歌曲：")
	if len(titles) <= maxListTitles {
		for i, title := range titles {
			fmt.Fprintf(&b, "\n%d.%s", i+1, title)
		}
		return b.String()
	}

	for i, title := range titles[:listPreviewTitles] {
		fmt.Fprintf(&b, "\n%d.%s", i+1, title)
	}
	fmt.Fprintf(&b, "\n\n还有其他 %d 首歌曲可供选择", len(titles)-listPreviewTitles)
	return b.String()
}

// deliver hands a locally composed answer to the stream callback, if
// any, and returns it.
func deliver(answer string, stream ai.StreamFunc) string {
	if stream != nil {
		stream(answer)
	}
	return answer
}
