// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package minutes ties the meeting index together: it opens the index
// stored in an export directory, owns the AI provider, and hands out
// indexers and searchers bound to both.
package minutes

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/ai/openai"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/search"
	"github.com/poiesic/minutes/storage"
	"github.com/poiesic/minutes/storage/badger"
)

// ErrExportDirRequired is returned by Open without an export directory.
var ErrExportDirRequired = errors.New("export directory required")

// Database ties an export directory to its badger index and a lazily
// built AI provider.
type Database struct {
	layout   layout.Layout
	store    storage.VectorStore
	aiConfig *ai.Config
	logger   *slog.Logger

	providerOnce sync.Once
	provider     ai.AIProvider
	providerErr  error
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
	logger   *slog.Logger
}

// WithAIConfig sets the configuration used to build the AI provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a ready AI provider instead of building one from
// the configuration.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps the index in memory instead of under the export
// directory.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithLogger sets the logger handed to indexers and searchers.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// Open opens the index of the export directory, creating it if needed.
// The AI provider is built on first use, so read-only queries work without
// credentials.
func Open(exportDir string, opts ...DatabaseOption) (*Database, error) {
	if exportDir == "" {
		return nil, ErrExportDirRequired
	}
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	l := layout.New(exportDir)
	backend, err := badger.OpenBackend(l.IndexPath(), options.inMemory)
	if err != nil {
		return nil, err
	}

	store, err := badger.NewVectorStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	db := &Database{
		layout:   l,
		store:    store,
		aiConfig: options.aiConfig,
		logger:   options.logger,
		provider: options.provider,
	}
	if db.provider != nil {
		db.providerOnce.Do(func() {})
	}
	return db, nil
}

// Provider returns the AI provider, building it on first call.
func (db *Database) Provider() (ai.AIProvider, error) {
	db.providerOnce.Do(func() {
		db.provider, db.providerErr = openai.NewProvider(db.aiConfig)
	})
	return db.provider, db.providerErr
}

// Close closes the AI provider, if one was built, and the vector store.
func (db *Database) Close() error {
	if db.provider != nil {
		if err := db.provider.Close(); err != nil {
			db.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := db.store.Close(); err != nil {
		db.logger.Error("error closing vector store", "err", err)
		return err
	}
	return nil
}

// Layout returns the export directory layout.
func (db *Database) Layout() layout.Layout {
	return db.layout
}

// VectorStore returns the underlying store.
func (db *Database) VectorStore() storage.VectorStore {
	return db.store
}

// NewIndexer returns an indexer writing to this database. It needs the AI
// provider.
func (db *Database) NewIndexer(opts ...indexing.Option) (*indexing.Indexer, error) {
	provider, err := db.Provider()
	if err != nil {
		return nil, err
	}
	opts = append([]indexing.Option{indexing.WithLogger(db.logger)}, opts...)
	return indexing.NewIndexer(db.store, provider, opts...)
}

// Index rebuilds the index from the export directory.
func (db *Database) Index(ctx context.Context, opts indexing.IndexOptions, ixOpts ...indexing.Option) (*indexing.Result, error) {
	ix, err := db.NewIndexer(ixOpts...)
	if err != nil {
		return nil, err
	}
	return ix.Index(ctx, db.layout.Root, opts)
}

// NewSearcher returns a searcher over this database. When the AI provider
// cannot be built the searcher has no embedder and free-text queries fail
// with search.ErrEmbedderRequired.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	var embedder ai.Embedder
	if provider, err := db.Provider(); err == nil {
		embedder = provider.Embedder()
	} else {
		db.logger.Debug("searcher without embedder", "err", err)
	}
	opts = append([]search.Option{search.WithLayout(db.layout), search.WithLogger(db.logger)}, opts...)
	return search.NewSearcher(db.store, embedder, opts...)
}
