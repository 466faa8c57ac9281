// Copyright 2025 Poiesic Systems
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

import "github.com/poiesic/minutes/ai"

// MockProvider hands out one MockEmbedder and one MockInsightExtractor and
// remembers whether it was closed.
type MockProvider struct {
	embedder  *MockEmbedder
	extractor *MockInsightExtractor
	closed    bool
}

// NewMockProvider returns a provider backed by fresh default mocks.
func NewMockProvider() ai.AIProvider {
	return NewMockProviderWithServices(nil, nil)
}

// NewMockProviderWithServices wires the given mocks in; a nil argument gets
// a default mock instead.
func NewMockProviderWithServices(embedder *MockEmbedder, extractor *MockInsightExtractor) ai.AIProvider {
	if embedder == nil {
		embedder = NewMockEmbedder()
	}
	if extractor == nil {
		extractor = NewMockInsightExtractor()
	}
	return &MockProvider{embedder: embedder, extractor: extractor}
}

func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

func (p *MockProvider) InsightExtractor() ai.InsightExtractor {
	return p.extractor
}

func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockEmbedder exposes the concrete embedder for call-count assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockExtractor exposes the concrete extractor for call-count assertions.
func (p *MockProvider) GetMockExtractor() *MockInsightExtractor {
	return p.extractor
}
