package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/tmc/langchaingo/llms"
)

// Decomposer implements ai.Decomposer using OpenAI-compatible chat APIs.
type Decomposer struct {
	client      llms.Model
	temperature float64
	logger      *slog.Logger
}

func newDecomposer(client llms.Model, config *ai.Config) *Decomposer {
	return &Decomposer{
		client:      client,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-decomposer"),
	}
}

// NewDecomposer creates a sub-query decomposer using the provided configuration.
//
// Returns ai.Decomposer interface to enforce abstraction.
func NewDecomposer(config *ai.Config) (ai.Decomposer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	chat, err := newChatModel(config)
	if err != nil {
		return nil, err
	}
	return newDecomposer(chat, config), nil
}

// ExtractSubqueries splits a query into independent natural-language
// sub-queries, one per non-blank line of the model's response.
// A response with no usable lines falls back to the query itself.
func (d *Decomposer) ExtractSubqueries(ctx context.Context, query string) ([]string, error) {
	prompt := fmt.Sprintf(decomposePromptTemplate, query)

	result, err := llms.GenerateFromSinglePrompt(ctx, d.client, prompt,
		llms.WithTemperature(d.temperature),
	)
	if err != nil {
		d.logger.Error("sub-query extraction failed", "err", err)
		return nil, err
	}

	var subqueries []string
	for _, line := range strings.Split(result, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			subqueries = append(subqueries, line)
		}
	}

	if len(subqueries) == 0 {
		subqueries = []string{query}
	}

	d.logger.Debug("extracted sub-queries", "query", query, "count", len(subqueries))
	return subqueries, nil
}
