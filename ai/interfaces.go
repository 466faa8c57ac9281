package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding could not be generated after retries.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple texts, batching
	// requests to the provider. The returned slice is aligned with texts.
	EmbedTexts(ctx context.Context, texts []string, opts ...EmbedOption) ([][]float32, error)
}

// InsightExtractor turns a meeting into a summary, themes and key quotes.
// Implementations must be thread-safe for concurrent use.
type InsightExtractor interface {
	// ExtractInsights never fails: when the model cannot be reached or its
	// output cannot be parsed, a degraded result is returned instead.
	ExtractInsights(ctx context.Context, req ExtractionRequest) Insights
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// InsightExtractor returns the insight extraction service.
	InsightExtractor() InsightExtractor

	// Close releases resources held by the provider and its services.
	Close() error
}

// EmbedOptions tunes a single EmbedTexts call.
type EmbedOptions struct {
	// BatchSize overrides the provider batch size when positive.
	BatchSize int
	// Progress is called with (completed, total) after every batch.
	Progress func(completed, total int)
}

// EmbedOption is a functional option for EmbedTexts.
type EmbedOption func(*EmbedOptions)

// WithBatchSize overrides the number of texts per request.
func WithBatchSize(size int) EmbedOption {
	return func(o *EmbedOptions) {
		o.BatchSize = size
	}
}

// WithProgress registers a per-batch progress callback.
func WithProgress(fn func(completed, total int)) EmbedOption {
	return func(o *EmbedOptions) {
		o.Progress = fn
	}
}

// ApplyEmbedOptions folds opts into an EmbedOptions value.
func ApplyEmbedOptions(opts ...EmbedOption) EmbedOptions {
	var o EmbedOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
