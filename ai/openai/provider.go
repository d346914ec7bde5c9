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


package openai

import (
	"log/slog"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// A single chat client backs the classifier, rewriter, decomposer and
// generator; the embedder uses a separate client so embedding and chat
// can run against different hosts and models.
type Provider struct {
	config     *ai.Config
	embedder   *Embedder
	classifier *Classifier
	rewriter   *Rewriter
	decomposer *Decomposer
	generator  *Generator
	logger     *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	chat, err := newChatModel(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:     config,
		embedder:   embedder,
		classifier: newClassifier(chat, config),
		rewriter:   newRewriter(chat, config),
		decomposer: newDecomposer(chat, config),
		generator:  newGenerator(chat, config),
		logger:     slog.Default().With("component", "openai-provider"),
	}, nil
}

// newChatModel creates the shared chat completion client.
func newChatModel(config *ai.Config) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Classifier returns the route classification service.
func (p *Provider) Classifier() ai.Classifier {
	return p.classifier
}

// Rewriter returns the query rewriting service.
func (p *Provider) Rewriter() ai.Rewriter {
	return p.rewriter
}

// Decomposer returns the sub-query extraction service.
func (p *Provider) Decomposer() ai.Decomposer {
	return p.decomposer
}

// Generator returns the answer generation service.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
