package badger

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/storage"
)

// VectorStore implements storage.VectorStore on a Backend. It owns the
// backend and closes it on Close.
type VectorStore struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.VectorStore = (*VectorStore)(nil)

// newVectorStore is an internal constructor that returns the concrete type.
func newVectorStore(backend *Backend) (*VectorStore, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	return &VectorStore{
		backend: backend,
		logger:  slog.Default().With("component", "vector-store"),
	}, nil
}

// NewVectorStore creates a vector store on top of an open backend.
//
// Returns storage.VectorStore interface to enforce abstraction.
func NewVectorStore(backend *Backend) (storage.VectorStore, error) {
	return newVectorStore(backend)
}

// Initialize drops the documents and chunks tables.
func (s *VectorStore) Initialize(ctx context.Context) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := s.backend.DropPrefix(ctx, []byte(documentPrefix)); err != nil {
		return fmt.Errorf("drop documents table: %w", err)
	}
	if err := s.backend.DropPrefix(ctx, []byte(chunkPrefix)); err != nil {
		return fmt.Errorf("drop chunks table: %w", err)
	}
	s.logger.Debug("tables initialized")
	return nil
}

// StoreDocuments validates every document and writes them in one batch.
func (s *VectorStore) StoreDocuments(ctx context.Context, docs []*core.IndexedDocument) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	keys := make([][]byte, 0, len(docs))
	values := make([][]byte, 0, len(docs))
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrInvalidRow, err)
		}
		if len(doc.Vector) == 0 {
			return fmt.Errorf("%w: document %s: %w", storage.ErrInvalidRow, doc.ID, core.ErrMissingVector)
		}
		keys = append(keys, makeDocumentKey(doc.ID))
		values = append(values, storage.MarshalDocument(doc))
	}

	if err := s.backend.WriteAll(ctx, keys, values); err != nil {
		return fmt.Errorf("write documents: %w", err)
	}
	s.logger.Debug("stored documents", "count", len(docs))
	return nil
}

// StoreChunks validates every chunk and writes them in one batch.
func (s *VectorStore) StoreChunks(ctx context.Context, chunks []*core.ChunkRecord) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	keys := make([][]byte, 0, len(chunks))
	values := make([][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		if err := core.ValidateChunk(chunk); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrInvalidRow, err)
		}
		keys = append(keys, makeChunkKey(chunk.ID))
		values = append(values, storage.MarshalChunk(chunk))
	}

	if err := s.backend.WriteAll(ctx, keys, values); err != nil {
		return fmt.Errorf("write chunks: %w", err)
	}
	s.logger.Debug("stored chunks", "count", len(chunks))
	return nil
}

// Close closes the underlying backend.
func (s *VectorStore) Close() error {
	if s.backend.IsClosed() {
		return nil
	}
	return s.backend.Close()
}

// allDocuments decodes the documents table in key order.
func (s *VectorStore) allDocuments(ctx context.Context) ([]*core.IndexedDocument, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var docs []*core.IndexedDocument
	err := s.backend.Scan(ctx, []byte(documentPrefix), func(val []byte) error {
		doc, err := storage.UnmarshalDocument(val)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	return docs, err
}

// allChunks decodes the chunks table in key order.
func (s *VectorStore) allChunks(ctx context.Context) ([]*core.ChunkRecord, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var chunks []*core.ChunkRecord
	err := s.backend.Scan(ctx, []byte(chunkPrefix), func(val []byte) error {
		chunk, err := storage.UnmarshalChunk(val)
		if err != nil {
			return err
		}
		chunks = append(chunks, chunk)
		return nil
	})
	return chunks, err
}

// l2Distance returns the Euclidean distance between a and b, which must
// have the same length.
func l2Distance(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

type scored[T any] struct {
	item     T
	id       string
	distance float32
}

// nearest keeps the k closest items, ordered by distance then id.
func nearest[T any](items []scored[T], k int) []scored[T] {
	slices.SortFunc(items, func(a, b scored[T]) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	if len(items) > k {
		items = items[:k]
	}
	return items
}
