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

import (
	"fmt"
	"strings"
)

// ValidateSpeaker validates that a Speaker has a valid value.
func ValidateSpeaker(speaker Speaker) error {
	if _, ok := ParseSpeaker(string(speaker)); !ok {
		return fmt.Errorf("%w: value %q", ErrInvalidSpeaker, speaker)
	}
	return nil
}

// ValidateTheme validates a Theme according to domain rules.
//
// Validation rules:
//   - Name must be a registry id
//   - Evidence must not be empty
//   - Every evidence item needs non-empty text and a valid speaker
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return fmt.Errorf("%w: theme is nil", ErrInvalidTheme)
	}
	if !IsKnownTheme(theme.Name) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTheme, ErrUnknownTheme, theme.Name)
	}
	if len(theme.Evidence) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTheme, ErrNoEvidence)
	}
	for i, ev := range theme.Evidence {
		if strings.TrimSpace(ev.Text) == "" {
			return fmt.Errorf("%w: evidence %d: %w", ErrInvalidTheme, i, ErrEmptyContent)
		}
		if err := ValidateSpeaker(ev.Speaker); err != nil {
			return fmt.Errorf("%w: evidence %d: %w", ErrInvalidTheme, i, err)
		}
	}
	return nil
}

// ValidateQuote validates a Quote according to domain rules.
// An empty Theme is allowed; a non-empty one must be in the registry.
func ValidateQuote(quote *Quote) error {
	if quote == nil {
		return fmt.Errorf("%w: quote is nil", ErrInvalidQuote)
	}
	if strings.TrimSpace(quote.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuote, ErrEmptyContent)
	}
	if err := ValidateSpeaker(quote.Speaker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}
	if quote.Theme != "" && !IsKnownTheme(quote.Theme) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidQuote, ErrUnknownTheme, quote.Theme)
	}
	return nil
}

// ValidateDocument validates an IndexedDocument and everything nested in it.
//
// NOT validated:
//   - Vector (checked by the store against its own dimension)
//   - Folders (free-form)
func ValidateDocument(doc *IndexedDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyID)
	}
	for i := range doc.Themes {
		if err := ValidateTheme(&doc.Themes[i]); err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidDocument, doc.ID, err)
		}
	}
	for i := range doc.KeyQuotes {
		if err := ValidateQuote(&doc.KeyQuotes[i]); err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidDocument, doc.ID, err)
		}
	}
	return nil
}

// ValidateChunk validates a ChunkRecord.
func ValidateChunk(chunk *ChunkRecord) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if chunk.ID == "" || chunk.DocumentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyID)
	}
	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}
	if !chunk.Kind.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidChunk, ErrInvalidChunkKind, chunk.Kind)
	}
	if len(chunk.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrMissingVector)
	}
	return nil
}
