package core

import (
	"errors"
	"testing"
)

func validTheme() Theme {
	return Theme{
		Name:        "pricing",
		Description: "Customer thinks the enterprise tier is expensive",
		Evidence: []ThemeEvidence{
			{Text: "That's more than we budgeted", Speaker: SpeakerParticipant},
		},
	}
}

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr error
	}{
		{name: "valid theme", mutate: func(*Theme) {}},
		{
			name:    "unknown theme",
			mutate:  func(th *Theme) { th.Name = "weather" },
			wantErr: ErrUnknownTheme,
		},
		{
			name:    "no evidence",
			mutate:  func(th *Theme) { th.Evidence = nil },
			wantErr: ErrNoEvidence,
		},
		{
			name:    "empty evidence text",
			mutate:  func(th *Theme) { th.Evidence[0].Text = "  " },
			wantErr: ErrEmptyContent,
		},
		{
			name:    "invalid speaker",
			mutate:  func(th *Theme) { th.Evidence[0].Speaker = "customer" },
			wantErr: ErrInvalidSpeaker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := validTheme()
			tt.mutate(&th)
			err := ValidateTheme(&th)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTheme() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTheme() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("ValidateTheme() error = %v, want wrapped ErrInvalidTheme", err)
			}
		})
	}

	if err := ValidateTheme(nil); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("ValidateTheme(nil) error = %v", err)
	}
}

func TestValidateQuote(t *testing.T) {
	tests := []struct {
		name    string
		quote   Quote
		wantErr error
	}{
		{
			name:  "valid quote without theme",
			quote: Quote{Text: "We'd switch tomorrow", Speaker: SpeakerParticipant},
		},
		{
			name:  "valid quote with theme",
			quote: Quote{Text: "We'd switch tomorrow", Speaker: SpeakerHost, Theme: "competition"},
		},
		{
			name:    "empty text",
			quote:   Quote{Speaker: SpeakerHost},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "unknown theme",
			quote:   Quote{Text: "x", Speaker: SpeakerHost, Theme: "weather"},
			wantErr: ErrUnknownTheme,
		},
		{
			name:    "missing speaker",
			quote:   Quote{Text: "x"},
			wantErr: ErrInvalidSpeaker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuote(&tt.quote)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQuote() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuote() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	doc := &IndexedDocument{
		ID:        "doc-1",
		Title:     "Acme sync",
		Themes:    []Theme{validTheme()},
		KeyQuotes: []Quote{{Text: "Hello", Speaker: SpeakerHost}},
	}
	if err := ValidateDocument(doc); err != nil {
		t.Fatalf("ValidateDocument() error = %v", err)
	}

	doc.Themes[0].Evidence = nil
	if err := ValidateDocument(doc); !errors.Is(err, ErrNoEvidence) {
		t.Errorf("ValidateDocument() error = %v, want ErrNoEvidence", err)
	}

	if err := ValidateDocument(&IndexedDocument{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("ValidateDocument() error = %v, want ErrEmptyID", err)
	}
}

func TestValidateChunk(t *testing.T) {
	chunk := &ChunkRecord{
		ID:         ChunkID("doc-1", ChunkKindSummary, ""),
		DocumentID: "doc-1",
		Content:    "Meeting summary: ok",
		Kind:       ChunkKindSummary,
		Vector:     []float32{0.1},
	}
	if err := ValidateChunk(chunk); err != nil {
		t.Fatalf("ValidateChunk() error = %v", err)
	}

	chunk.Kind = "paragraph"
	if err := ValidateChunk(chunk); !errors.Is(err, ErrInvalidChunkKind) {
		t.Errorf("ValidateChunk() error = %v, want ErrInvalidChunkKind", err)
	}

	chunk.Kind = ChunkKindQuote
	chunk.Vector = nil
	if err := ValidateChunk(chunk); !errors.Is(err, ErrMissingVector) {
		t.Errorf("ValidateChunk() error = %v, want ErrMissingVector", err)
	}
}
