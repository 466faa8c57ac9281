package indexing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/storage"
)

const (
	// DefaultWindowSize is the number of concurrent extractions in bulk mode.
	DefaultWindowSize = 3

	// DefaultWindowDelay is the pause between bulk extraction windows.
	DefaultWindowDelay = time.Second
)

// Indexer rebuilds the search index from a set of meetings.
// One run at a time; runs replace the whole index.
type Indexer struct {
	store       storage.VectorStore
	embedder    ai.Embedder
	extractor   ai.InsightExtractor
	windowSize  int
	windowDelay time.Duration
	progress    io.Writer
	logger      *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger.With("component", "indexer")
		return nil
	}
}

// WithWindowSize sets how many extractions run at once in bulk mode.
func WithWindowSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		ix.windowSize = size
		return nil
	}
}

// WithWindowDelay sets the pause between bulk extraction windows.
func WithWindowDelay(d time.Duration) Option {
	return func(ix *Indexer) error {
		if d < 0 {
			d = 0
		}
		ix.windowDelay = d
		return nil
	}
}

// WithProgress reports per-document progress to w.
func WithProgress(w io.Writer) Option {
	return func(ix *Indexer) error {
		ix.progress = w
		return nil
	}
}

// NewIndexer creates an indexer writing to store with the provider's services.
func NewIndexer(store storage.VectorStore, provider ai.AIProvider, opts ...Option) (*Indexer, error) {
	if store == nil {
		return nil, ErrVectorStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	embedder := provider.Embedder()
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	ix := &Indexer{
		store:       store,
		embedder:    embedder,
		extractor:   provider.InsightExtractor(),
		windowSize:  DefaultWindowSize,
		windowDelay: DefaultWindowDelay,
		logger:      slog.Default().With("component", "indexer"),
	}
	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// IndexOptions controls one indexing run.
type IndexOptions struct {
	// Model overrides the configured extraction model when non-empty.
	Model string
	// SkipExtraction summarizes each meeting from its notes without calling
	// the language model.
	SkipExtraction bool
	// BulkExtraction runs extractions concurrently in bounded windows before
	// embedding.
	BulkExtraction bool
}

// Result summarizes an indexing run.
type Result struct {
	DocumentsIndexed    int `json:"documents_indexed"`
	ChunksCreated       int `json:"chunks_created"`
	DegradedExtractions int `json:"degraded_extractions"`
}

// Index reads every meeting in the export directory and rebuilds the index.
func (ix *Indexer) Index(ctx context.Context, sourceDir string, opts IndexOptions) (*Result, error) {
	docs, err := layout.ReadDocuments(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", sourceDir, err)
	}
	return ix.IndexDocuments(ctx, docs, opts)
}

// IndexDocuments rebuilds the index from docs, processed in order. Every
// document is embedded before the store is touched, so a failure leaves the
// previous index in place.
func (ix *Indexer) IndexDocuments(ctx context.Context, docs []layout.SourceDocument, opts IndexOptions) (*Result, error) {
	if !opts.SkipExtraction && ix.extractor == nil {
		return nil, ErrExtractorRequired
	}

	progress := newProgressReporter(ix.progress, len(docs))
	defer progress.finish()

	var prepared []ai.Insights
	if opts.BulkExtraction && !opts.SkipExtraction {
		progress.beginStage("extracting")
		var err error
		prepared, err = ix.extractAll(ctx, docs, opts.Model, progress)
		if err != nil {
			return nil, fmt.Errorf("bulk extraction: %w", err)
		}
	}

	progress.beginStage("indexing")

	result := &Result{}
	documents := make([]*core.IndexedDocument, 0, len(docs))
	var chunks []*core.ChunkRecord

	for i, src := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var insights ai.Insights
		switch {
		case opts.SkipExtraction:
			insights = ai.NotesInsights(src.Notes)
		case prepared != nil:
			insights = prepared[i]
		default:
			insights = ix.extractor.ExtractInsights(ctx, extractionRequest(src, opts.Model))
		}
		if insights.Degraded {
			result.DegradedExtractions++
			ix.logger.Warn("extraction degraded, indexed from notes", "id", src.ID, "title", src.Title)
		}

		doc, docChunks, err := ix.buildDocument(ctx, src, insights)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", src.ID, err)
		}
		documents = append(documents, doc)
		chunks = append(chunks, docChunks...)

		ix.logger.Info("document prepared",
			"id", src.ID,
			"themes", len(doc.Themes),
			"quotes", len(doc.KeyQuotes),
			"chunks", len(docChunks))
		progress.advance(len(docChunks), insights.Degraded)
	}
	progress.finish()

	if err := ix.store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	if err := ix.store.StoreDocuments(ctx, documents); err != nil {
		return nil, fmt.Errorf("store documents: %w", err)
	}
	if err := ix.store.StoreChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}

	result.DocumentsIndexed = len(documents)
	result.ChunksCreated = len(chunks)
	ix.logger.Info("index rebuilt",
		"documents", result.DocumentsIndexed,
		"chunks", result.ChunksCreated,
		"degraded", result.DegradedExtractions)
	return result, nil
}

func extractionRequest(src layout.SourceDocument, model string) ai.ExtractionRequest {
	return ai.ExtractionRequest{
		Title:      src.Title,
		Notes:      src.Notes,
		Transcript: src.Transcript,
		Model:      model,
	}
}
