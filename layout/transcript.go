package layout

import (
	"strings"

	"github.com/poiesic/minutes/core"
)

// HostChannel is the audio channel of the recording user.
const HostChannel = "microphone"

// Segment is one utterance as delivered by the recording source.
type Segment struct {
	Source    string  `json:"source"`
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time,omitempty"`
	EndTime   float64 `json:"end_time,omitempty"`
}

// Speaker maps the segment's channel to a speaker label.
func (s Segment) Speaker() core.Speaker {
	if strings.EqualFold(strings.TrimSpace(s.Source), HostChannel) {
		return core.SpeakerHost
	}
	return core.SpeakerParticipant
}

// FormatTranscript renders segments as "[host] ..." and "[participant] ..."
// lines in order. Blank utterances are dropped and internal newlines are
// folded so each utterance stays on one line.
func FormatTranscript(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text == "" {
			continue
		}
		lines = append(lines, "["+string(seg.Speaker())+"] "+text)
	}
	return strings.Join(lines, "\n")
}
