package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
)

const insightsResponseShape = `{
  "insights_summary": "2-4 sentence summary of the meeting",
  "themes": [
    {
      "name": "<theme id from the list>",
      "description": "one sentence on how this theme showed up",
      "evidence": [
        {"text": "verbatim excerpt", "speaker": "host" | "participant"}
      ]
    }
  ],
  "key_quotes": [
    {
      "text": "verbatim quote",
      "speaker": "host" | "participant",
      "timestamp": "optional, e.g. 12:34",
      "context": "short phrase on what the quote is about",
      "theme": "optional theme id"
    }
  ]
}`

const insightsPromptTemplate = `You analyze customer meeting transcripts and return structured insights as JSON.

Speakers: every transcript line is tagged [host] or [participant]. The host is the person who
recorded the meeting (our team). Participants are the external people on the call. Participant
statements are the external signal we care about: prefer participant excerpts for evidence and
key quotes, and only use host excerpts when they capture something the participant confirmed.

Themes. Use ONLY these theme ids; ignore anything that does not fit one of them:
%s

Output ONLY valid JSON in exactly this shape, with no preamble or trailing text:

%s

Rules:
- Include a theme only when the transcript contains at least one excerpt supporting it.
- Evidence and quote text must be copied from the transcript, not paraphrased.
- Return at most 5 key quotes.
- If nothing matches, return "themes": [] and "key_quotes": [].
- The JSON must parse without errors; no trailing commas and no comments.`

// buildSystemPrompt creates the system prompt with the theme catalog embedded.
func buildSystemPrompt() string {
	var themes strings.Builder
	for _, t := range core.Themes() {
		fmt.Fprintf(&themes, "- %s (%s): %s\n", t.ID, t.Name, t.Prompt)
	}
	return fmt.Sprintf(insightsPromptTemplate, strings.TrimRight(themes.String(), "\n"), insightsResponseShape)
}

// buildUserPrompt lays out the meeting for the model.
func buildUserPrompt(req ai.ExtractionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meeting title: %s\n\n", req.Title)
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "Meeting notes:\n%s\n\n", notes)
	}
	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		transcript = "(no transcript available)"
	}
	fmt.Fprintf(&b, "Transcript:\n%s\n", transcript)
	return b.String()
}
