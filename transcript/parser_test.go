package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "01:02:03", want: 3723.0},
		{in: "02:05", want: 125.0},
		{in: "45", want: 45.0},
		{in: "00:00", want: 0.0},
		{in: "1:00:00", want: 3600.0},
		{in: "x", wantErr: true},
		{in: "1:x", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseClock(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("parseClock(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseWellFormedLine(t *testing.T) {
	raw := "[00:01 - 00:05]: SPEAKER_00: hello"
	fullText, segments, speakers := Parse(raw)

	assert.Equal(t, raw, fullText)
	assert.Len(t, segments, 1)
	assert.Equal(t, 1.0, segments[0].Start)
	assert.Equal(t, 5.0, segments[0].End)
	assert.Equal(t, "SPEAKER_00", segments[0].Speaker)
	assert.Equal(t, "hello", segments[0].Text)
	assert.Equal(t, 1.0, segments[0].Confidence)
	assert.Equal(t, 1, speakers)
}

func TestParseSpaceDelimitedSpeaker(t *testing.T) {
	_, segments, speakers := Parse("[00:01:05 - 00:01:10] SPEAKER_01: sounds good")

	assert.Len(t, segments, 1)
	assert.Equal(t, 65.0, segments[0].Start)
	assert.Equal(t, 70.0, segments[0].End)
	assert.Equal(t, "SPEAKER_01", segments[0].Speaker)
	assert.Equal(t, "sounds good", segments[0].Text)
	assert.Equal(t, 1, speakers)
}

func TestParseSkipsLinesOutsideShape(t *testing.T) {
	// no colon anywhere: fails the shape check, no segment at all
	_, segments, speakers := Parse("[bad] no colon after bracket")
	assert.Empty(t, segments)
	assert.Equal(t, 0, speakers)

	// plain prose is skipped too
	_, segments, _ = Parse("Speakers identified during the call.\n\nThanks for listening!")
	assert.Empty(t, segments)
}

func TestParseFallbackOnUnparsableTime(t *testing.T) {
	line := "[x - y]: A: hi"
	_, segments, speakers := Parse(line)

	assert.Len(t, segments, 1)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 0.0, segments[0].End)
	assert.Equal(t, line, segments[0].Text)
	assert.Equal(t, UnknownSpeaker, segments[0].Speaker)
	assert.Equal(t, 0.0, segments[0].Confidence)
	// fallback lines never count toward the speaker total
	assert.Equal(t, 0, speakers)
}

func TestParseFallbackOnMissingSpeakerColon(t *testing.T) {
	// shape matches (the time range has colons) but there is no colon after
	// the bracket, so speaker extraction fails
	line := "[00:01 - 00:05] just some words"
	_, segments, speakers := Parse(line)

	assert.Len(t, segments, 1)
	assert.Equal(t, UnknownSpeaker, segments[0].Speaker)
	assert.Equal(t, 0.0, segments[0].Confidence)
	assert.Equal(t, 0, speakers)
}

func TestParseMultipleSpeakers(t *testing.T) {
	raw := "Here is the transcript:\n" +
		"[00:00 - 00:04]: SPEAKER_00: good morning everyone\n" +
		"[00:04 - 00:09]: SPEAKER_01: thanks for joining\n" +
		"\n" +
		"[00:09 - 00:12]: SPEAKER_00: let's get started\n" +
		"Speakers: SPEAKER_00, SPEAKER_01"

	fullText, segments, speakers := Parse(raw)

	assert.Equal(t, raw, fullText)
	assert.Len(t, segments, 3)
	assert.Equal(t, 2, speakers)
	assert.Equal(t, "SPEAKER_01", segments[1].Speaker)
	assert.Equal(t, 4.0, segments[1].Start)
	assert.Equal(t, 9.0, segments[1].End)

	// segments stay in input order
	assert.Equal(t, "good morning everyone", segments[0].Text)
	assert.Equal(t, "let's get started", segments[2].Text)
}
