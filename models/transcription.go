package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Segment is one diarized slice of a transcript. Start and End are seconds from
// the beginning of the audio. Confidence is a fixed heuristic: the model exposes
// no per-segment confidence, so parsed lines carry 1.0 and fallback lines 0.0.
type Segment struct {
	Start      float64 `bson:"start" json:"start"`
	End        float64 `bson:"end" json:"end"`
	Text       string  `bson:"text" json:"text"`
	Speaker    string  `bson:"speaker" json:"speaker"`
	Confidence float64 `bson:"confidence" json:"confidence"`
}

// TranscriptionResult is the outcome of one transcription attempt.
// Error is set iff Success is false.
type TranscriptionResult struct {
	Success       bool      `bson:"success" json:"success"`
	FullText      string    `bson:"full_text" json:"full_text"`
	Segments      []Segment `bson:"segments" json:"segments"`
	SpeakersCount int       `bson:"speakers_count" json:"speakers_count"`
	Duration      float64   `bson:"duration" json:"duration"`
	Error         string    `bson:"error,omitempty" json:"error,omitempty"`
}

// AudioTranscription persists one successful transcription together with the
// stored audio path. Transcription is written once at creation and never
// mutated afterward; the repository exposes no update operation.
// Collection: audio_transcriptions
type AudioTranscription struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AudioFile     string              `bson:"audio_file" json:"audio_file"`
	Transcription TranscriptionResult `bson:"transcription" json:"transcription"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
}

// FailedTranscription builds the uniform failure payload.
func FailedTranscription(msg string) TranscriptionResult {
	return TranscriptionResult{
		Success:  false,
		Error:    msg,
		Segments: []Segment{},
	}
}
