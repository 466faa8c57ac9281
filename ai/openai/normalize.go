package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
)

// looseString accepts a JSON string, number, boolean or null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", data[:1])
	default:
		*s = looseString(data)
		return nil
	}
}

func (s looseString) trimmed() string {
	return strings.TrimSpace(string(s))
}

// evidenceItem is either a bare string or {text, speaker}.
type evidenceItem struct {
	Text    looseString `json:"text"`
	Speaker looseString `json:"speaker"`
}

func (e *evidenceItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain evidenceItem
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*e = evidenceItem(p)
		return nil
	}
	*e = evidenceItem{}
	return json.Unmarshal(data, &e.Text)
}

// quoteItem is either a bare string or a full quote object.
type quoteItem struct {
	Text      looseString `json:"text"`
	Speaker   looseString `json:"speaker"`
	Timestamp looseString `json:"timestamp"`
	Context   looseString `json:"context"`
	Theme     looseString `json:"theme"`
}

func (q *quoteItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain quoteItem
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*q = quoteItem(p)
		return nil
	}
	*q = quoteItem{}
	return json.Unmarshal(data, &q.Text)
}

type rawTheme struct {
	Name        looseString       `json:"name"`
	Description looseString       `json:"description"`
	Evidence    []json.RawMessage `json:"evidence"`
}

type rawInsights struct {
	InsightsSummary json.RawMessage `json:"insights_summary"`
	Themes          json.RawMessage `json:"themes"`
	KeyQuotes       json.RawMessage `json:"key_quotes"`
}

var errNotAnObject = errors.New("response is not a JSON object")

// parseInsights decodes a model response and repairs it into valid insights.
// Only a response that is not a JSON object at all is an error; every
// nested field is decoded independently and dropped when malformed.
func parseInsights(responseText string) (ai.Insights, error) {
	text := repairJSON(stripCodeFences(responseText))

	var raw rawInsights
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return ai.Insights{}, fmt.Errorf("%w: %w", errNotAnObject, err)
	}

	insights := ai.Insights{
		Themes:    normalizeThemes(decodeList(raw.Themes)),
		KeyQuotes: normalizeQuotes(decodeList(raw.KeyQuotes)),
	}

	var summary looseString
	if len(raw.InsightsSummary) > 0 {
		_ = json.Unmarshal(raw.InsightsSummary, &summary)
	}
	insights.InsightsSummary = summary.trimmed()
	if insights.InsightsSummary == "" {
		insights.InsightsSummary = ai.PlaceholderSummary
	}

	return insights, nil
}

func decodeList(data json.RawMessage) []json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// normalizeThemes drops unknown themes and empty evidence, defaults invalid
// speakers to participant, and merges repeated theme ids into the first
// occurrence. Themes left without evidence are removed.
func normalizeThemes(items []json.RawMessage) []core.Theme {
	themes := make([]core.Theme, 0, len(items))
	position := make(map[string]int)

	for _, item := range items {
		var rt rawTheme
		if err := json.Unmarshal(item, &rt); err != nil {
			continue
		}
		id, ok := resolveThemeID(rt.Name.trimmed())
		if !ok {
			continue
		}

		var evidence []core.ThemeEvidence
		for _, rawEv := range rt.Evidence {
			var ev evidenceItem
			if err := json.Unmarshal(rawEv, &ev); err != nil {
				continue
			}
			text := ev.Text.trimmed()
			if text == "" {
				continue
			}
			evidence = append(evidence, core.ThemeEvidence{
				Text:    text,
				Speaker: core.NormalizeSpeaker(strings.ToLower(ev.Speaker.trimmed())),
			})
		}
		if len(evidence) == 0 {
			continue
		}

		if i, seen := position[id]; seen {
			themes[i].Evidence = append(themes[i].Evidence, evidence...)
			continue
		}
		position[id] = len(themes)
		themes = append(themes, core.Theme{
			Name:        id,
			Description: rt.Description.trimmed(),
			Evidence:    evidence,
		})
	}
	return themes
}

// normalizeQuotes drops quotes without text, defaults invalid speakers to
// participant and clears theme references that are not in the registry.
func normalizeQuotes(items []json.RawMessage) []core.Quote {
	quotes := make([]core.Quote, 0, len(items))
	for _, item := range items {
		var rq quoteItem
		if err := json.Unmarshal(item, &rq); err != nil {
			continue
		}
		text := rq.Text.trimmed()
		if text == "" {
			continue
		}
		theme, ok := resolveThemeID(rq.Theme.trimmed())
		if !ok {
			theme = ""
		}
		quotes = append(quotes, core.Quote{
			Text:      text,
			Speaker:   core.NormalizeSpeaker(strings.ToLower(rq.Speaker.trimmed())),
			Timestamp: rq.Timestamp.trimmed(),
			Context:   rq.Context.trimmed(),
			Theme:     theme,
		})
	}
	return quotes
}

// resolveThemeID maps a model-provided theme reference onto a registry id.
// Ids are matched case-insensitively with spaces and dashes read as
// underscores; display names are accepted too.
func resolveThemeID(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if core.IsKnownTheme(name) {
		return name, true
	}
	id := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(name))
	if core.IsKnownTheme(id) {
		return id, true
	}
	for _, t := range core.Themes() {
		if strings.EqualFold(t.Name, name) {
			return t.ID, true
		}
	}
	return "", false
}
