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


// Package storage provides the storage abstraction layer for minutes.
//
// VectorStore holds two logical tables: indexed documents (one row per
// meeting, carrying the summary vector and all structured insights) and
// chunks (one row per embedded summary, theme or quote). Both are rebuilt
// wholesale on every indexing run; there is no transaction spanning them.
//
// Rows are encoded by MarshalDocument/MarshalChunk with the mus-go codecs
// generated into core (see cmd/musgen), behind a leading row version.
// Collections decode as empty slices, never nil.
//
// # Usage
//
//	store, err := badger.NewVectorStore(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	matches := store.SearchDocuments(ctx, queryVector, 5, "a team")
//
// Use in tests with in-memory storage:
//
//	store, err := badger.NewMemoryVectorStore()
package storage
