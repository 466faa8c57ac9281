package openai

import (
	"testing"

	"github.com/poiesic/minutes/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		p, err := NewProvider(ai.NewConfig(ai.WithAPIKey("")))
		assert.ErrorIs(t, err, ai.ErrMissingAPIKey)
		assert.Nil(t, p)
	})

	t.Run("builds both services", func(t *testing.T) {
		p, err := NewProvider(ai.NewConfig(
			ai.WithAPIKey("sk-test"),
			ai.WithBaseURL("http://localhost:1/v1"),
		))
		require.NoError(t, err)
		assert.IsType(t, &Embedder{}, p.Embedder())
		assert.IsType(t, &InsightExtractor{}, p.InsightExtractor())
		assert.NoError(t, p.Close())
	})
}
