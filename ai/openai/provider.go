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


package openai

import (
	"log/slog"

	"github.com/poiesic/minutes/ai"
)

// Provider bundles the go-openai embedder and the langchaingo extractor
// behind ai.AIProvider. Both talk to the same endpoint with one API key.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	extractor *InsightExtractor
	logger    *slog.Logger
}

// NewProvider validates config and builds both clients. A config without
// an API key is rejected with ai.ErrMissingAPIKey before any client exists.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}
	extractor, err := newInsightExtractor(config)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "openai-provider")
	logger.Debug("provider ready",
		"embeddingModel", config.EmbeddingModel,
		"extractionModel", config.ExtractionModel,
		"dimensions", config.EmbeddingDimensions)

	return &Provider{
		config:    config,
		embedder:  embedder,
		extractor: extractor,
		logger:    logger,
	}, nil
}

func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

func (p *Provider) InsightExtractor() ai.InsightExtractor {
	return p.extractor
}

// Close is a no-op; the HTTP clients hold no resources of their own.
func (p *Provider) Close() error {
	p.logger.Debug("provider closed")
	return nil
}
