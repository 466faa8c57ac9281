package mock

import (
	"context"
	"sync"

	"github.com/poiesic/minutes/ai"
)

// MockInsightExtractor is a test double for ai.InsightExtractor.
// It allows custom behavior injection via a function field.
type MockInsightExtractor struct {
	// ExtractFunc is called by ExtractInsights if set.
	// If nil, the notes-derived summary is returned with no themes or quotes.
	ExtractFunc func(ctx context.Context, req ai.ExtractionRequest) ai.Insights

	mu        sync.Mutex
	callCount int
	requests  []ai.ExtractionRequest
}

// NewMockInsightExtractor creates a mock insight extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockInsightExtractor() *MockInsightExtractor {
	return &MockInsightExtractor{}
}

// WithExtractFunc injects extraction behavior and returns the mock.
func (m *MockInsightExtractor) WithExtractFunc(fn func(ctx context.Context, req ai.ExtractionRequest) ai.Insights) *MockInsightExtractor {
	m.ExtractFunc = fn
	return m
}

// ExtractInsights records the request and returns the injected or default result.
func (m *MockInsightExtractor) ExtractInsights(ctx context.Context, req ai.ExtractionRequest) ai.Insights {
	m.mu.Lock()
	m.callCount++
	m.requests = append(m.requests, req)
	fn := m.ExtractFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return ai.NotesInsights(req.Notes)
}

// CallCount returns the number of times ExtractInsights was called.
func (m *MockInsightExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Requests returns the recorded requests in call order.
func (m *MockInsightExtractor) Requests() []ai.ExtractionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ai.ExtractionRequest(nil), m.requests...)
}

// Reset clears the call count, recorded requests and custom function.
func (m *MockInsightExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.requests = nil
	m.ExtractFunc = nil
}
