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


package search

import "errors"

var (
	// ErrVectorStoreRequired is returned when a vector store is not provided.
	ErrVectorStoreRequired = errors.New("vector store required")

	// ErrEmbedderRequired is returned by free-text queries when no embedder
	// is configured.
	ErrEmbedderRequired = errors.New("embedder required for free-text search")

	// ErrEmptyQuery is returned when a free-text query is blank.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrLayoutRequired is returned by transcript lookups when no export
	// layout is configured.
	ErrLayoutRequired = errors.New("export layout required")
)
