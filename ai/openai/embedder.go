package openai

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/minutes/ai"
	oai "github.com/sashabaranov/go-openai"
)

// Embedder implements ai.Embedder using the OpenAI embeddings endpoint.
type Embedder struct {
	client        *oai.Client
	model         oai.EmbeddingModel
	dimensions    int
	maxInputChars int
	batchSize     int
	batchDelay    time.Duration
	retry         ai.RetryPolicy
	logger        *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := oai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL

	return &Embedder{
		client:        oai.NewClientWithConfig(clientConfig),
		model:         oai.EmbeddingModel(config.EmbeddingModel),
		dimensions:    config.EmbeddingDimensions,
		maxInputChars: config.MaxInputChars,
		batchSize:     config.BatchSize,
		batchDelay:    config.BatchDelay,
		retry:         config.RetryPolicy(isTransient),
		logger:        slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText generates a vector embedding for a single text string.
// Transient failures are retried; the last error is returned when retries
// are exhausted.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating embedding for single text", "length", len(text))

	vectors, err := e.embedBatch(ctx, []string{ai.TruncateRunes(text, e.maxInputChars)})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts generates embeddings in batches. The output is aligned with
// texts regardless of the order the provider returns vectors in.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string, opts ...ai.EmbedOption) ([][]float32, error) {
	options := ai.ApplyEmbedOptions(opts...)
	batchSize := e.batchSize
	if options.BatchSize > 0 {
		batchSize = options.BatchSize
	}

	e.logger.Debug("generating embeddings for texts", "count", len(texts), "batchSize", batchSize)

	result := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		if start > 0 && e.batchDelay > 0 {
			if err := sleep(ctx, e.batchDelay); err != nil {
				return nil, err
			}
		}

		end := min(start+batchSize, len(texts))
		inputs := make([]string, 0, end-start)
		for _, text := range texts[start:end] {
			inputs = append(inputs, ai.TruncateRunes(text, e.maxInputChars))
		}

		vectors, err := e.embedBatch(ctx, inputs)
		if err != nil {
			e.logger.Error("failed to generate embeddings", "batchStart", start, "count", len(inputs), "err", err)
			return nil, err
		}
		result = append(result, vectors...)

		if options.Progress != nil {
			options.Progress(len(result), len(texts))
		}
	}

	return result, nil
}

func (e *Embedder) embedBatch(ctx context.Context, inputs []string) ([][]float32, error) {
	var resp oai.EmbeddingResponse
	err := ai.RetryWithBackoff(ctx, e.retry, func() error {
		r, err := e.client.CreateEmbeddings(ctx, oai.EmbeddingRequest{
			Input: inputs,
			Model: e.model,
		})
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, ai.ErrEmptyEmbedding
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("%w: got %d, want %d", ai.ErrEmbeddingCountMismatch, len(resp.Data), len(inputs))
	}

	data := slices.Clone(resp.Data)
	slices.SortFunc(data, func(a, b oai.Embedding) int {
		return cmp.Compare(a.Index, b.Index)
	})

	vectors := make([][]float32, len(data))
	for i, d := range data {
		if d.Index != i {
			return nil, fmt.Errorf("%w: missing index %d", ai.ErrEmbeddingCountMismatch, i)
		}
		if len(d.Embedding) == 0 {
			return nil, ai.ErrEmptyEmbedding
		}
		if e.dimensions > 0 && len(d.Embedding) != e.dimensions {
			return nil, fmt.Errorf("%w: got %d, want %d", ai.ErrDimensionMismatch, len(d.Embedding), e.dimensions)
		}
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
