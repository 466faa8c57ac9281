package ai

import "errors"

var (
	// ErrMissingAPIKey indicates the provider credential was not configured.
	ErrMissingAPIKey = errors.New("ai config: APIKey is required (set OPENAI_API_KEY)")

	// ErrInvalidMaxAttempts indicates a retry policy without any attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrRateLimited marks an upstream rate-limit response.
	ErrRateLimited = errors.New("rate limited")

	// ErrUpstreamUnavailable marks a 5xx style upstream failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrEmptyEmbedding indicates the provider returned no vector.
	ErrEmptyEmbedding = errors.New("provider returned no embedding")

	// ErrEmbeddingCountMismatch indicates a batch response of the wrong size.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match input count")

	// ErrDimensionMismatch indicates a vector of unexpected length.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
