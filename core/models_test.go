package core

import (
	"math"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "short content", content: "test content"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IDFromContent(tt.content) != IDFromContent(tt.content) {
				t.Errorf("IDFromContent(%q) is not deterministic", tt.content)
			}
		})
	}

	if IDFromContent("a") == IDFromContent("b") {
		t.Error("different content produced the same ID")
	}
}

func TestChunkID(t *testing.T) {
	a := ChunkID("doc-1", ChunkKindTheme, "0")
	if a != ChunkID("doc-1", ChunkKindTheme, "0") {
		t.Error("ChunkID is not deterministic")
	}
	if len(a) != 16 {
		t.Errorf("ChunkID length = %d, want 16", len(a))
	}

	others := []string{
		ChunkID("doc-2", ChunkKindTheme, "0"),
		ChunkID("doc-1", ChunkKindQuote, "0"),
		ChunkID("doc-1", ChunkKindTheme, "1"),
		ChunkID("doc-1", ChunkKindSummary, ""),
	}
	for _, o := range others {
		if o == a {
			t.Errorf("ChunkID collision: %s", o)
		}
	}
}

func TestNormalizeSpeaker(t *testing.T) {
	tests := []struct {
		in   string
		want Speaker
	}{
		{"host", SpeakerHost},
		{"participant", SpeakerParticipant},
		{"", SpeakerParticipant},
		{"Host", SpeakerParticipant},
		{"customer", SpeakerParticipant},
	}
	for _, tt := range tests {
		if got := NormalizeSpeaker(tt.in); got != tt.want {
			t.Errorf("NormalizeSpeaker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreFromDistance(t *testing.T) {
	if got := ScoreFromDistance(0); got != 1 {
		t.Errorf("ScoreFromDistance(0) = %v, want 1", got)
	}

	prev := ScoreFromDistance(0)
	for _, d := range []float32{0.1, 0.5, 1, 2, 10, 1000} {
		s := ScoreFromDistance(d)
		if s <= 0 || s > 1 {
			t.Errorf("ScoreFromDistance(%v) = %v, out of (0, 1]", d, s)
		}
		if s >= prev {
			t.Errorf("ScoreFromDistance not strictly decreasing at %v", d)
		}
		prev = s
	}
}

func TestScoreFromDistance_NonFinite(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
	}{
		{"positive infinity", float32(math.Inf(1))},
		{"negative infinity", float32(math.Inf(-1))},
		{"nan", float32(math.NaN())},
		{"max float32", math.MaxFloat32},
		{"negative", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreFromDistance(tt.distance)
			if math.IsNaN(float64(s)) || s <= 0 || s > 1 {
				t.Errorf("ScoreFromDistance(%v) = %v, out of (0, 1]", tt.distance, s)
			}
		})
	}

	if got := ScoreFromDistance(float32(math.Inf(1))); got >= ScoreFromDistance(1000) {
		t.Errorf("ScoreFromDistance(+Inf) = %v, want below finite distances", got)
	}
}

func TestThemeRegistry(t *testing.T) {
	themes := Themes()
	if len(themes) == 0 {
		t.Fatal("registry is empty")
	}

	seen := make(map[string]bool)
	for _, th := range themes {
		if th.ID == "" || th.Name == "" || th.Prompt == "" {
			t.Errorf("incomplete theme definition: %+v", th)
		}
		if seen[th.ID] {
			t.Errorf("duplicate theme id %q", th.ID)
		}
		seen[th.ID] = true

		got, ok := LookupTheme(th.ID)
		if !ok || got != th {
			t.Errorf("LookupTheme(%q) = %+v, %v", th.ID, got, ok)
		}
	}

	if IsKnownTheme("weather") {
		t.Error("unexpected theme 'weather' in registry")
	}
	if ThemeDisplayName("pricing") != "Pricing" {
		t.Errorf("ThemeDisplayName(pricing) = %q", ThemeDisplayName("pricing"))
	}

	// Mutating the returned slice must not touch the registry.
	themes[0].Name = "changed"
	if Themes()[0].Name == "changed" {
		t.Error("Themes returned the backing slice")
	}
}
