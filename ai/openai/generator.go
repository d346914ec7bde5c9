package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/tmc/langchaingo/llms"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
// All three answer shapes share the same client; streaming is delivered
// through the llms streaming callback when a StreamFunc is supplied.
type Generator struct {
	client      llms.Model
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

func newGenerator(client llms.Model, config *ai.Config) *Generator {
	return &Generator{
		client:      client,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		logger:      slog.Default().With("component", "openai-generator"),
	}
}

// NewGenerator creates an answer generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	chat, err := newChatModel(config)
	if err != nil {
		return nil, err
	}
	return newGenerator(chat, config), nil
}

// GenerateAnswer produces a detailed answer grounded in the retrieved documents.
func (g *Generator) GenerateAnswer(ctx context.Context, question string, docs []*core.ParentDocument, stream ai.StreamFunc) (string, error) {
	prompt := fmt.Sprintf(answerPromptTemplate, question, buildContext(docs))
	return g.complete(ctx, prompt, stream)
}

// GenerateComparison produces a comparative answer across per-subject
// document groups.
func (g *Generator) GenerateComparison(ctx context.Context, question string, groups [][]*core.ParentDocument, stream ai.StreamFunc) (string, error) {
	prompt := fmt.Sprintf(comparePromptTemplate, question, buildComparisonContext(groups))
	return g.complete(ctx, prompt, stream)
}

// GenerateDirect answers without any retrieved context.
func (g *Generator) GenerateDirect(ctx context.Context, question string, stream ai.StreamFunc) (string, error) {
	prompt := fmt.Sprintf(directPromptTemplate, question)
	return g.complete(ctx, prompt, stream)
}

func (g *Generator) complete(ctx context.Context, prompt string, stream ai.StreamFunc) (string, error) {
	opts := []llms.CallOption{
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	}
	if stream != nil {
		opts = append(opts, llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
			stream(string(chunk))
			return nil
		}))
	}

	answer, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt, opts...)
	if err != nil {
		g.logger.Error("answer generation failed", "err", err)
		return "", err
	}

	return answer, nil
}
