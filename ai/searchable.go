package ai

import (
	"fmt"
	"strings"

	"github.com/poiesic/minutes/core"
)

// SummaryText shapes a meeting summary for embedding.
func SummaryText(summary string) string {
	return "Meeting summary: " + summary
}

// ThemeText shapes a theme for embedding: the display name, the description
// and one speaker-tagged line per evidence item.
func ThemeText(theme core.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Theme %s: %s", core.ThemeDisplayName(theme.Name), theme.Description)
	for _, ev := range theme.Evidence {
		fmt.Fprintf(&b, "\n- [%s] %q", ev.Speaker, ev.Text)
	}
	return b.String()
}

// QuoteText shapes a key quote for embedding.
func QuoteText(q core.Quote) string {
	if q.Context != "" {
		return fmt.Sprintf("Quote about %s: %q", q.Context, q.Text)
	}
	return fmt.Sprintf("Quote: %q", q.Text)
}
