// Package transcript parses the semi-structured text a diarization model
// returns into ordered segments.
//
// The expected line shape is:
//
//	[<start> - <end>]<delim> <speaker>: <text>
//
// e.g. "[00:01 - 00:05]: SPEAKER_00: hello". Lines not matching the shape are
// skipped; lines matching the shape but failing a parse step become fallback
// segments with zeroed times and an UNKNOWN speaker.
package transcript

import (
	"strconv"
	"strings"

	"blogsmith/models"
)

// UnknownSpeaker labels fallback segments whose line could not be parsed.
const UnknownSpeaker = "UNKNOWN"

// Parse walks the raw model output line by line and returns the full text
// unchanged, the parsed segments in input order, and the number of distinct
// speakers seen on successfully parsed lines. Fallback segments never count
// toward the speaker total.
func Parse(raw string) (string, []models.Segment, int) {
	segments := []models.Segment{}
	speakers := map[string]struct{}{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") || !strings.Contains(line, "]") || !strings.Contains(line, ":") {
			continue
		}

		seg, ok := parseLine(line)
		if !ok {
			// Keep the raw line so nothing the model said is dropped.
			segments = append(segments, models.Segment{
				Text:       line,
				Speaker:    UnknownSpeaker,
				Confidence: 0.0,
			})
			continue
		}
		segments = append(segments, seg)
		speakers[seg.Speaker] = struct{}{}
	}

	return raw, segments, len(speakers)
}

func parseLine(line string) (models.Segment, bool) {
	rb := strings.Index(line, "]")

	start, end, ok := parseTimeRange(line[1:rb])
	if !ok {
		return models.Segment{}, false
	}

	// Speaker is the text after the closing bracket, skipping exactly one
	// delimiter character, up to the next colon. Best-effort: speaker labels
	// containing colons truncate at the first one.
	rest := line[rb+1:]
	if rest == "" {
		return models.Segment{}, false
	}
	rest = rest[1:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return models.Segment{}, false
	}

	return models.Segment{
		Start:      start,
		End:        end,
		Text:       strings.TrimSpace(rest[colon+1:]),
		Speaker:    strings.TrimSpace(rest[:colon]),
		Confidence: 1.0,
	}, true
}

func parseTimeRange(s string) (float64, float64, bool) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, false
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// parseClock converts a colon-separated clock value ("SS", "MM:SS", "HH:MM:SS",
// or more fields) to total seconds. The rightmost field is seconds, the next
// minutes, and so on, each weighted by successive powers of 60.
func parseClock(s string) (float64, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")

	total := 0.0
	weight := 1.0
	for i := len(fields) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return 0, err
		}
		total += v * weight
		weight *= 60
	}
	return total, nil
}
