package minutes

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/ai/mock"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	l := layout.New(root)
	require.NoError(t, l.WriteDocument(layout.SourceDocument{
		ID:         "acme",
		Title:      "Acme call",
		CreatedAt:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		Folders:    []string{"A team"},
		Notes:      "Discussed pricing concerns.",
		Transcript: "[host] Thanks for joining.",
	}))
	return root
}

func TestOpen(t *testing.T) {
	t.Run("creates the index under the export directory", func(t *testing.T) {
		root := t.TempDir()
		db, err := Open(root, WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		defer db.Close()

		info, err := os.Stat(filepath.Join(root, ".minutes", "index"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, root, db.Layout().Root)
		assert.NotNil(t, db.VectorStore())
	})

	t.Run("requires a directory", func(t *testing.T) {
		_, err := Open("")
		assert.ErrorIs(t, err, ErrExportDirRequired)
	})

	t.Run("error when the index path is a file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".minutes"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".minutes", "index"), []byte("x"), 0o644))

		db, err := Open(root)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_ProviderIsLazy(t *testing.T) {
	db, err := Open(t.TempDir(), WithInMemory(), WithAIConfig(ai.NewConfig(ai.WithAPIKey(""))))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Provider()
	assert.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = db.NewIndexer()
	assert.ErrorIs(t, err, ai.ErrMissingAPIKey)

	searcher, err := db.NewSearcher()
	require.NoError(t, err, "read-only queries work without credentials")
	assert.NotNil(t, searcher.ListThemes(context.Background()))

	_, err = searcher.Search(context.Background(), "pricing", "", 5)
	assert.ErrorIs(t, err, search.ErrEmbedderRequired)
}

func TestDatabase_IndexAndSearch(t *testing.T) {
	ctx := context.Background()
	root := writeExport(t)
	provider := mock.NewMockProvider().(*mock.MockProvider)

	db, err := Open(root, WithProvider(provider))
	require.NoError(t, err)

	result, err := db.Index(ctx, indexing.IndexOptions{SkipExtraction: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DocumentsIndexed)
	assert.Equal(t, 1, result.ChunksCreated)

	searcher, err := db.NewSearcher()
	require.NoError(t, err)
	resp, err := searcher.Search(ctx, "Discussed pricing concerns.", "", 5)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "acme", resp.Results[0].ID)

	text, ok, err := searcher.GetTranscript(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[host] Thanks for joining.\n", text)

	require.NoError(t, db.Close())
	assert.True(t, provider.Closed())

	// The index persists across opens.
	db, err = Open(root, WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer db.Close()
	searcher, err = db.NewSearcher()
	require.NoError(t, err)
	detail, ok := searcher.GetDocument(ctx, "acme")
	require.True(t, ok)
	assert.Equal(t, "Discussed pricing concerns.", detail.Summary)
	assert.Equal(t, 1, detail.ChunkCount)
}
