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
	"context"
	"log/slog"

	"github.com/poiesic/minutes/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// InsightExtractor implements ai.InsightExtractor using OpenAI-compatible chat APIs.
type InsightExtractor struct {
	client llms.Model
	retry  ai.RetryPolicy
	logger *slog.Logger
}

// newInsightExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newInsightExtractor(config *ai.Config) (*InsightExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ExtractionModel),
	)
	if err != nil {
		return nil, err
	}

	return newInsightExtractorWithModel(client, config.RetryPolicy(isTransient)), nil
}

func newInsightExtractorWithModel(client llms.Model, retry ai.RetryPolicy) *InsightExtractor {
	return &InsightExtractor{
		client: client,
		retry:  retry,
		logger: slog.Default().With("component", "openai-extractor"),
	}
}

// NewInsightExtractor creates a new insight extractor using the provided configuration.
//
// Returns ai.InsightExtractor interface to enforce abstraction.
func NewInsightExtractor(config *ai.Config) (ai.InsightExtractor, error) {
	return newInsightExtractor(config)
}

// ExtractInsights asks the model for a summary, themes and key quotes and
// repairs whatever comes back. Upstream or parse failures yield
// ai.DegradedInsights built from the notes.
func (e *InsightExtractor) ExtractInsights(ctx context.Context, req ai.ExtractionRequest) ai.Insights {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(req)),
			},
		},
	}

	callOpts := []llms.CallOption{llms.WithTemperature(0.1), llms.WithJSONMode()}
	if req.Model != "" {
		callOpts = append(callOpts, llms.WithModel(req.Model))
	}

	var responseText string
	err := ai.RetryWithBackoff(ctx, e.retry, func() error {
		response, err := e.client.GenerateContent(ctx, content, callOpts...)
		if err != nil {
			return err
		}
		if len(response.Choices) < 1 {
			return errNoChoices
		}
		responseText = response.Choices[0].Content
		return nil
	})
	if err != nil {
		e.logger.Warn("insight extraction failed, using notes", "title", req.Title, "err", err)
		return ai.DegradedInsights(req.Notes)
	}

	insights, err := parseInsights(responseText)
	if err != nil {
		e.logger.Warn("error parsing extraction response, using notes",
			"title", req.Title,
			"response", responseText,
			"err", err)
		return ai.DegradedInsights(req.Notes)
	}

	e.logger.Debug("extracted insights",
		"title", req.Title,
		"themes", len(insights.Themes),
		"quotes", len(insights.KeyQuotes))
	return insights
}
