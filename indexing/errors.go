package indexing

import "errors"

var (
	// ErrVectorStoreRequired is returned when a vector store is not provided.
	ErrVectorStoreRequired = errors.New("vector store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbedderRequired is returned when the provider has no embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrExtractorRequired is returned when extraction is requested but the
	// provider has no insight extractor.
	ErrExtractorRequired = errors.New("insight extractor required unless extraction is skipped")

	// ErrEmbeddingCount is returned when the embedder returns a different
	// number of vectors than texts submitted.
	ErrEmbeddingCount = errors.New("embedding count does not match texts")
)
