package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/tmc/langchaingo/llms"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

func newClassifier(client llms.Model, _ *ai.Config) *Classifier {
	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}
}

// NewClassifier creates a route classifier using the provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	chat, err := newChatModel(config)
	if err != nil {
		return nil, err
	}
	return newClassifier(chat, config), nil
}

// ClassifyQuery asks the model for a route label and coerces anything
// outside the closed label set to ai.RouteGeneral.
func (c *Classifier) ClassifyQuery(ctx context.Context, query string) (ai.Route, error) {
	prompt := fmt.Sprintf(routePromptTemplate, query)

	// Classification should be deterministic, so temperature stays at zero.
	label, err := llms.GenerateFromSinglePrompt(ctx, c.client, prompt,
		llms.WithTemperature(0),
	)
	if err != nil {
		c.logger.Error("route classification failed", "err", err)
		return "", err
	}

	route := ai.ParseRoute(label)
	c.logger.Debug("classified query", "query", query, "label", label, "route", route)
	return route, nil
}
