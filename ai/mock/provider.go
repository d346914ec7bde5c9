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


package mock

import "github.com/garfieldra/Mandarin-Lyric-Mind/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock service instances.
type MockProvider struct {
	embedder   *MockEmbedder
	classifier *MockClassifier
	rewriter   *MockRewriter
	decomposer *MockDecomposer
	generator  *MockGenerator
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use the GetMock* accessors for concrete types in test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder:   NewMockEmbedder(),
		classifier: NewMockClassifier(),
		rewriter:   NewMockRewriter(),
		decomposer: NewMockDecomposer(),
		generator:  NewMockGenerator(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(
	embedder *MockEmbedder,
	classifier *MockClassifier,
	rewriter *MockRewriter,
	decomposer *MockDecomposer,
	generator *MockGenerator,
) ai.Provider {
	return &MockProvider{
		embedder:   embedder,
		classifier: classifier,
		rewriter:   rewriter,
		decomposer: decomposer,
		generator:  generator,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder { return p.embedder }

// Classifier returns the mock classifier.
func (p *MockProvider) Classifier() ai.Classifier { return p.classifier }

// Rewriter returns the mock rewriter.
func (p *MockProvider) Rewriter() ai.Rewriter { return p.rewriter }

// Decomposer returns the mock decomposer.
func (p *MockProvider) Decomposer() ai.Decomposer { return p.decomposer }

// Generator returns the mock generator.
func (p *MockProvider) Generator() ai.Generator { return p.generator }

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error { return nil }

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder { return p.embedder }

// GetMockClassifier returns the underlying mock classifier for test assertions.
func (p *MockProvider) GetMockClassifier() *MockClassifier { return p.classifier }

// GetMockRewriter returns the underlying mock rewriter for test assertions.
func (p *MockProvider) GetMockRewriter() *MockRewriter { return p.rewriter }

// GetMockDecomposer returns the underlying mock decomposer for test assertions.
func (p *MockProvider) GetMockDecomposer() *MockDecomposer { return p.decomposer }

// GetMockGenerator returns the underlying mock generator for test assertions.
func (p *MockProvider) GetMockGenerator() *MockGenerator { return p.generator }
