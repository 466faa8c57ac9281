package ai

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 1536, cfg.EmbeddingDimensions)
	assert.Equal(t, "gpt-4o-mini", cfg.ExtractionModel)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryBaseDelay)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 8000, cfg.MaxInputChars)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-large"),
			WithEmbeddingDimensions(3072),
			WithExtractionModel("gpt-4o"),
		)

		assert.Equal(t, "text-embedding-3-large", cfg.EmbeddingModel)
		assert.Equal(t, 3072, cfg.EmbeddingDimensions)
		assert.Equal(t, "gpt-4o", cfg.ExtractionModel)
	})

	t.Run("with retry and batching", func(t *testing.T) {
		cfg := NewConfig(
			WithRetry(5, time.Millisecond),
			WithEmbeddingBatch(10, 0),
		)

		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, time.Millisecond, cfg.RetryBaseDelay)
		assert.Equal(t, 10, cfg.BatchSize)
		assert.Zero(t, cfg.BatchDelay)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already has v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"missing v1", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseURL: tt.in, APIKey: "  sk-test \n"}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.BaseURL)
			assert.Equal(t, "sk-test", cfg.APIKey)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-test"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing api key is fatal", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingAPIKey))
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base url", func(c *Config) { c.BaseURL = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing extraction model", func(c *Config) { c.ExtractionModel = "" }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }},
		{"zero input cap", func(c *Config) { c.MaxInputChars = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithAPIKey("sk-test"))
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_RetryPolicy(t *testing.T) {
	cfg := NewConfig(WithRetry(2, 2*time.Second))
	policy := cfg.RetryPolicy(nil)

	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, 2*time.Second, policy.BaseDelay)
	assert.Nil(t, policy.Retryable)
}
