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


// Package ai provides abstractions for the AI services used by minutes.
//
// The package is designed around three interfaces:
//
//   - Embedder: generates vector embeddings from text, singly or in batches
//   - InsightExtractor: turns a meeting into a summary, themes and quotes
//   - AIProvider: aggregates both for initialization and lifecycle
//
// It also owns the pieces every provider shares: Config, the retry policy
// with transient-error classification, the degraded-result rules and the
// shaping of searchable text before embedding.
//
// # Implementation Packages
//
//   - ai/openai: production implementation against OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, ...) return
// interface types. Mock constructors return concrete types so tests can
// inject behavior and assert call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, ai.SummaryText("Renewal call"))
//	insights := provider.InsightExtractor().ExtractInsights(ctx, ai.ExtractionRequest{
//	    Title:      "Acme renewal",
//	    Transcript: transcript,
//	})
package ai
