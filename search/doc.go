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


// Package search answers queries against the meeting index.
//
// The Searcher offers:
//   - Free-text search: the query is embedded and matched against document
//     vectors, optionally restricted to a folder
//   - Excerpt search over the summary, theme and quote chunks
//   - Theme search over the catalog of known themes
//   - Projections: document detail, transcript, listings of documents,
//     folders and themes with live statistics
//
// Store failures surface as empty results. Only free-text queries return
// errors, when the query cannot be embedded.
package search
