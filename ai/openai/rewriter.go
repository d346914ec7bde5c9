package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/tmc/langchaingo/llms"
)

// Rewriter implements ai.Rewriter using OpenAI-compatible chat APIs.
type Rewriter struct {
	client      llms.Model
	temperature float64
	logger      *slog.Logger
}

func newRewriter(client llms.Model, config *ai.Config) *Rewriter {
	return &Rewriter{
		client:      client,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-rewriter"),
	}
}

// NewRewriter creates a query rewriter using the provided configuration.
//
// Returns ai.Rewriter interface to enforce abstraction.
func NewRewriter(config *ai.Config) (ai.Rewriter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	chat, err := newChatModel(config)
	if err != nil {
		return nil, err
	}
	return newRewriter(chat, config), nil
}

// RewriteQuery normalizes a vague query into a retrieval-friendly phrasing.
// An empty model response falls back to the original query.
func (r *Rewriter) RewriteQuery(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(rewritePromptTemplate, query)

	result, err := llms.GenerateFromSinglePrompt(ctx, r.client, prompt,
		llms.WithTemperature(r.temperature),
	)
	if err != nil {
		r.logger.Error("query rewrite failed", "err", err)
		return "", err
	}

	rewritten := strings.TrimSpace(result)
	if rewritten == "" {
		return query, nil
	}

	if rewritten != query {
		r.logger.Info("query rewritten", "from", query, "to", rewritten)
	} else {
		r.logger.Debug("query unchanged by rewrite", "query", query)
	}

	return rewritten, nil
}
