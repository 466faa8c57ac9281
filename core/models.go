package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// String renders the ID as 16 hex digits.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Speaker identifies who said something in a meeting.
type Speaker string

const (
	// SpeakerHost is the recording user.
	SpeakerHost Speaker = "host"
	// SpeakerParticipant is anyone else on the call.
	SpeakerParticipant Speaker = "participant"
)

// ParseSpeaker reports whether s names a known speaker.
func ParseSpeaker(s string) (Speaker, bool) {
	switch Speaker(s) {
	case SpeakerHost, SpeakerParticipant:
		return Speaker(s), true
	}
	return "", false
}

// NormalizeSpeaker maps anything that is not a known speaker to SpeakerParticipant.
func NormalizeSpeaker(s string) Speaker {
	if sp, ok := ParseSpeaker(s); ok {
		return sp
	}
	return SpeakerParticipant
}

// ThemeEvidence is a single speaker-attributed excerpt backing a theme.
type ThemeEvidence struct {
	Text    string
	Speaker Speaker
}

// Theme is a registry theme detected in one meeting.
type Theme struct {
	Name        string // registry id
	Description string
	Evidence    []ThemeEvidence
}

// Quote is a notable standalone excerpt from a meeting.
type Quote struct {
	Text      string
	Speaker   Speaker
	Timestamp string // optional, empty when unknown
	Context   string
	Theme     string // optional registry id
}

// IndexedDocument is one row of the documents table.
type IndexedDocument struct {
	ID              string
	Title           string
	Folders         []string
	CreatedAt       time.Time
	UpdatedAt       time.Time // zero when absent
	RawSummary      string
	Themes          []Theme
	KeyQuotes       []Quote
	InsightsSummary string
	HasTranscript   bool
	SourceName      string // notes file name without extension
	Vector          []float32
}

// ThemeNames returns the registry ids of the document's themes in order.
func (d *IndexedDocument) ThemeNames() []string {
	names := make([]string, 0, len(d.Themes))
	for _, t := range d.Themes {
		names = append(names, t.Name)
	}
	return names
}

// FindTheme returns the document's theme with the given id.
func (d *IndexedDocument) FindTheme(name string) (*Theme, bool) {
	for i := range d.Themes {
		if d.Themes[i].Name == name {
			return &d.Themes[i], true
		}
	}
	return nil, false
}

// ChunkKind identifies what a chunk was derived from.
type ChunkKind string

const (
	ChunkKindSummary    ChunkKind = "summary"
	ChunkKindTheme      ChunkKind = "theme"
	ChunkKindQuote      ChunkKind = "quote"
	ChunkKindRawSummary ChunkKind = "raw_summary"
)

// IsValid reports whether k is one of the known chunk kinds.
func (k ChunkKind) IsValid() bool {
	switch k {
	case ChunkKindSummary, ChunkKindTheme, ChunkKindQuote, ChunkKindRawSummary:
		return true
	}
	return false
}

// ChunkRecord is one row of the chunks table.
type ChunkRecord struct {
	ID         string
	DocumentID string
	Content    string // the searchable text that was embedded
	Kind       ChunkKind
	ThemeName  string
	Timestamp  string
	Vector     []float32
}

// ChunkID derives a stable chunk id from its parent document, kind and a
// discriminator (theme or quote index; empty for the summary).
func ChunkID(documentID string, kind ChunkKind, discriminator string) string {
	return IDFromContent(documentID + "|" + string(kind) + "|" + discriminator).String()
}

// DocumentMatch is a document returned by similarity search.
type DocumentMatch struct {
	Document *IndexedDocument
	Distance float32
	Score    float32
}

// ChunkMatch is a chunk returned by similarity search.
type ChunkMatch struct {
	Chunk    *ChunkRecord
	Distance float32
	Score    float32
}

// ThemeStat aggregates a theme across all indexed documents.
type ThemeStat struct {
	DocumentCount      int
	TotalEvidenceCount int
}

// FolderStat counts the documents carrying a folder name.
type FolderStat struct {
	Name  string
	Count int
}

// ScoreFromDistance converts an L2 distance into a relevance score in (0, 1].
// Negative and NaN distances score 1; distances too large to represent score
// the smallest positive float32.
func ScoreFromDistance(distance float32) float32 {
	d := float64(distance)
	if math.IsNaN(d) || d < 0 {
		return 1
	}
	score := float32(1 / (1 + d))
	if score == 0 {
		return math.SmallestNonzeroFloat32
	}
	return score
}
