package storage

import (
	"context"

	"github.com/poiesic/minutes/core"
)

// ChunkFilter narrows SearchChunks. Zero values match everything.
type ChunkFilter struct {
	Kind      core.ChunkKind
	ThemeName string
}

// Matches reports whether chunk passes the filter.
func (f ChunkFilter) Matches(chunk *core.ChunkRecord) bool {
	if f.Kind != "" && chunk.Kind != f.Kind {
		return false
	}
	if f.ThemeName != "" && chunk.ThemeName != f.ThemeName {
		return false
	}
	return true
}

// VectorStore persists indexed documents and their chunks and answers
// similarity and listing queries over them.
//
// The write side returns errors. Query operations never do: a failing query
// is logged by the implementation and answered with an empty result.
// Implementations must be thread-safe.
type VectorStore interface {
	// Initialize drops both tables if they exist. The next bulk write
	// recreates them with whatever rows it carries.
	Initialize(ctx context.Context) error

	// StoreDocuments validates and bulk-writes documents, replacing rows
	// with the same id.
	StoreDocuments(ctx context.Context, docs []*core.IndexedDocument) error

	// StoreChunks validates and bulk-writes chunks, replacing rows with the
	// same id.
	StoreChunks(ctx context.Context, chunks []*core.ChunkRecord) error

	// SearchDocuments returns up to limit documents nearest to vector by L2
	// distance. When folder is non-empty, candidates are then filtered to
	// documents with a folder name containing it, case-insensitively, so
	// fewer than limit results may come back.
	SearchDocuments(ctx context.Context, vector []float32, limit int, folder string) []*core.DocumentMatch

	// SearchChunks retrieves 2*limit nearest chunks, applies filter and
	// truncates to limit.
	SearchChunks(ctx context.Context, vector []float32, limit int, filter ChunkFilter) []*core.ChunkMatch

	// ListDocuments returns every document matching folder (all when
	// empty), newest CreatedAt first.
	ListDocuments(ctx context.Context, folder string) []*core.IndexedDocument

	// ListChunks returns the chunks of one document, or all chunks when
	// documentID is empty, ordered by id.
	ListChunks(ctx context.Context, documentID string) []*core.ChunkRecord

	// GetDocument looks up a single document by id.
	GetDocument(ctx context.Context, id string) (*core.IndexedDocument, bool)

	// ThemeStats counts, per theme id, the documents carrying it and the
	// evidence items across them.
	ThemeStats(ctx context.Context) map[string]core.ThemeStat

	// FolderStats counts documents per folder name, most populated first.
	FolderStats(ctx context.Context) []core.FolderStat

	// Close releases the underlying database.
	Close() error
}
