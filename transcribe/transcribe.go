// Package transcribe runs audio through the Gemini Files API for transcription
// with speaker diarization.
package transcribe

import (
	"context"
	"fmt"
	"os"
	"time"

	"blogsmith/config"
	"blogsmith/internal/logger"
	"blogsmith/models"
	"blogsmith/transcript"
)

const diarizationPrompt = "Transcribe the following audio, including speaker diarization. " +
	"Output should be structured with timestamps and speaker labels for each segment. " +
	"Please list all identified speakers at the end of the transcription, e.g., 'Speakers: SPEAKER_00, SPEAKER_01'."

const (
	stateProcessing = "PROCESSING"
	stateActive     = "ACTIVE"

	defaultPollInterval = 10 * time.Second
	cleanupTimeout      = 30 * time.Second
)

// RemoteFile is the handle of an uploaded audio file on the remote service.
type RemoteFile struct {
	Name     string
	URI      string
	MIMEType string
	State    string
}

// fileAPI is the remote surface the transcriber depends on. The production
// implementation wraps the Gemini client; tests substitute a fake.
type fileAPI interface {
	Upload(ctx context.Context, path string) (*RemoteFile, error)
	Get(ctx context.Context, name string) (*RemoteFile, error)
	Generate(ctx context.Context, prompt string, f *RemoteFile) (string, error)
	Delete(ctx context.Context, name string) error
}

// Transcriber uploads audio, waits for the remote file to become active, asks
// the model for a diarized transcript, and parses the response into segments.
// A Transcriber without a credential is valid but unconfigured.
type Transcriber struct {
	api          fileAPI
	pollInterval time.Duration
	probe        func(ctx context.Context, path string) (float64, error)
}

// New builds a Transcriber. An empty apiKey yields an unconfigured instance
// whose Transcribe fails fast without side effects.
func New(ctx context.Context, apiKey string, cfg config.GeminiConfig) (*Transcriber, error) {
	t := &Transcriber{
		pollInterval: defaultPollInterval,
		probe:        probeDuration,
	}
	if cfg.PollIntervalSeconds > 0 {
		t.pollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second
	}
	if apiKey == "" {
		return t, nil
	}

	api, err := newGeminiAPI(ctx, apiKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("transcribe: init gemini client: %w", err)
	}
	t.api = api
	return t, nil
}

// Configured reports whether a remote client is available. It never makes a
// remote call.
func (t *Transcriber) Configured() bool {
	return t != nil && t.api != nil
}

// Transcribe runs the full upload, poll, generate, parse sequence for the
// local audio file at path. All failures come back inside the result; the
// uploaded remote file is deleted exactly once whenever one was created,
// regardless of outcome.
func (t *Transcriber) Transcribe(ctx context.Context, path string) models.TranscriptionResult {
	if !t.Configured() {
		return models.FailedTranscription("Gemini API client not configured, set GEMINI_API_KEY")
	}
	if _, err := os.Stat(path); err != nil {
		return models.FailedTranscription(fmt.Sprintf("audio file not found: %s", path))
	}

	logger.InfoWithFields("uploading audio file", logger.Fields{"path": path})
	f, err := t.api.Upload(ctx, path)
	if err != nil {
		return models.FailedTranscription(fmt.Sprintf("upload failed: %v", err))
	}
	defer t.cleanup(f)

	f, err = t.waitUntilReady(ctx, f)
	if err != nil {
		return models.FailedTranscription(err.Error())
	}

	logger.InfoWithFields("requesting transcription", logger.Fields{"file": f.Name})
	text, err := t.api.Generate(ctx, diarizationPrompt, f)
	if err != nil {
		return models.FailedTranscription(fmt.Sprintf("generation failed: %v", err))
	}

	fullText, segments, speakers := transcript.Parse(text)

	// Duration comes from the local file, not from the model output.
	duration, err := t.probe(ctx, path)
	if err != nil {
		logger.WarnWithFields("could not determine audio duration", logger.Fields{
			"path": path, "error": err.Error(),
		})
		duration = 0
	}

	return models.TranscriptionResult{
		Success:       true,
		FullText:      fullText,
		Segments:      segments,
		SpeakersCount: speakers,
		Duration:      duration,
	}
}

// waitUntilReady polls the remote file at a fixed interval while it is still
// processing. Any terminal state other than active is a failure naming the
// state.
func (t *Transcriber) waitUntilReady(ctx context.Context, f *RemoteFile) (*RemoteFile, error) {
	for f.State == stateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.pollInterval):
		}

		next, err := t.api.Get(ctx, f.Name)
		if err != nil {
			return nil, fmt.Errorf("poll failed: %v", err)
		}
		f = next
	}

	if f.State != stateActive {
		return nil, fmt.Errorf("remote file failed to process, state: %s", f.State)
	}
	return f, nil
}

// cleanup deletes the uploaded remote file. Failures are logged, never
// escalated: they must not change the reported transcription outcome.
func (t *Transcriber) cleanup(f *RemoteFile) {
	if f == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := t.api.Delete(ctx, f.Name); err != nil {
		logger.WarnWithFields("failed to delete remote file", logger.Fields{
			"file": f.Name, "error": err.Error(),
		})
		return
	}
	logger.DebugWithFields("remote file deleted", logger.Fields{"file": f.Name})
}
