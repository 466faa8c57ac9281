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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates an IndexedDocument failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidChunk indicates a ChunkRecord failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidTheme indicates a Theme failed validation.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidQuote indicates a Quote failed validation.
	ErrInvalidQuote = errors.New("invalid quote")

	// ErrUnknownTheme indicates a theme id that is not in the registry.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrEmptyContent indicates a required text field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyID indicates a required identifier is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrNoEvidence indicates a theme without any evidence.
	ErrNoEvidence = errors.New("theme has no evidence")

	// ErrInvalidSpeaker indicates a Speaker outside {host, participant}.
	ErrInvalidSpeaker = errors.New("invalid speaker")

	// ErrInvalidChunkKind indicates an unknown ChunkKind.
	ErrInvalidChunkKind = errors.New("invalid chunk kind")

	// ErrMissingVector indicates a row without an embedding.
	ErrMissingVector = errors.New("vector cannot be empty")
)
