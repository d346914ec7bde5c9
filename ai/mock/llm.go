package mock

import (
	"context"

	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// MockClassifier is a test double for ai.Classifier.
// The default behavior classifies every query as ai.RouteGeneral.
type MockClassifier struct {
	// ClassifyQueryFunc is called by ClassifyQuery if set.
	ClassifyQueryFunc func(ctx context.Context, query string) (ai.Route, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default behavior.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// ClassifyQuery returns the injected route or ai.RouteGeneral.
func (m *MockClassifier) ClassifyQuery(ctx context.Context, query string) (ai.Route, error) {
	m.callCount++
	if m.ClassifyQueryFunc != nil {
		return m.ClassifyQueryFunc(ctx, query)
	}
	return ai.RouteGeneral, nil
}

// CallCount returns the number of calls.
func (m *MockClassifier) CallCount() int { return m.callCount }

// MockRewriter is a test double for ai.Rewriter.
// The default behavior returns queries unchanged.
type MockRewriter struct {
	// RewriteQueryFunc is called by RewriteQuery if set.
	RewriteQueryFunc func(ctx context.Context, query string) (string, error)

	callCount int
}

// NewMockRewriter creates a mock rewriter with default behavior.
func NewMockRewriter() *MockRewriter {
	return &MockRewriter{}
}

// RewriteQuery returns the injected rewrite or the query unchanged.
func (m *MockRewriter) RewriteQuery(ctx context.Context, query string) (string, error) {
	m.callCount++
	if m.RewriteQueryFunc != nil {
		return m.RewriteQueryFunc(ctx, query)
	}
	return query, nil
}

// CallCount returns the number of calls.
func (m *MockRewriter) CallCount() int { return m.callCount }

// MockDecomposer is a test double for ai.Decomposer.
// The default behavior yields the query itself as the single sub-query.
type MockDecomposer struct {
	// ExtractSubqueriesFunc is called by ExtractSubqueries if set.
	ExtractSubqueriesFunc func(ctx context.Context, query string) ([]string, error)

	callCount int
}

// NewMockDecomposer creates a mock decomposer with default behavior.
func NewMockDecomposer() *MockDecomposer {
	return &MockDecomposer{}
}

// ExtractSubqueries returns injected sub-queries or the query itself.
func (m *MockDecomposer) ExtractSubqueries(ctx context.Context, query string) ([]string, error) {
	m.callCount++
	if m.ExtractSubqueriesFunc != nil {
		return m.ExtractSubqueriesFunc(ctx, query)
	}
	return []string{query}, nil
}

// CallCount returns the number of calls.
func (m *MockDecomposer) CallCount() int { return m.callCount }

// MockGenerator is a test double for ai.Generator.
// Default behavior returns fixed canned answers and honors the stream callback.
type MockGenerator struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	GenerateAnswerFunc func(ctx context.Context, question string, docs []*core.ParentDocument, stream ai.StreamFunc) (string, error)

	// GenerateComparisonFunc is called by GenerateComparison if set.
	GenerateComparisonFunc func(ctx context.Context, question string, groups [][]*core.ParentDocument, stream ai.StreamFunc) (string, error)

	// GenerateDirectFunc is called by GenerateDirect if set.
	GenerateDirectFunc func(ctx context.Context, question string, stream ai.StreamFunc) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default canned answers.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateAnswer returns the injected or canned answer.
func (m *MockGenerator) GenerateAnswer(ctx context.Context, question string, docs []*core.ParentDocument, stream ai.StreamFunc) (string, error) {
	m.callCount++
	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, question, docs, stream)
	}
	return emit("mock answer", stream), nil
}

// GenerateComparison returns the injected or canned comparison.
func (m *MockGenerator) GenerateComparison(ctx context.Context, question string, groups [][]*core.ParentDocument, stream ai.StreamFunc) (string, error) {
	m.callCount++
	if m.GenerateComparisonFunc != nil {
		return m.GenerateComparisonFunc(ctx, question, groups, stream)
	}
	return emit("mock comparison", stream), nil
}

// GenerateDirect returns the injected or canned direct answer.
func (m *MockGenerator) GenerateDirect(ctx context.Context, question string, stream ai.StreamFunc) (string, error) {
	m.callCount++
	if m.GenerateDirectFunc != nil {
		return m.GenerateDirectFunc(ctx, question, stream)
	}
	return emit("mock direct answer", stream), nil
}

// CallCount returns the number of calls across all Generate methods.
func (m *MockGenerator) CallCount() int { return m.callCount }

func emit(answer string, stream ai.StreamFunc) string {
	if stream != nil {
		stream(answer)
	}
	return answer
}
