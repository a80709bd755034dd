package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"blogsmith/internal/logger"
	"blogsmith/models"
)

// Transcriber is the audio transcription client the service orchestrates.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) models.TranscriptionResult
	Configured() bool
}

// TranscriptionStore persists transcription records.
type TranscriptionStore interface {
	Create(ctx context.Context, t *models.AudioTranscription) (string, error)
	List(ctx context.Context) ([]models.AudioTranscription, error)
}

// MediaStore keeps the original uploaded audio.
type MediaStore interface {
	SaveAudio(originalName string, r io.Reader) (string, error)
}

// TranscriptionService stages an upload into a scoped temp file, runs the
// transcriber, and persists successful results. The temp file is removed on
// every path; a persistence failure is logged and never changes the result
// returned to the caller.
type TranscriptionService struct {
	transcriber Transcriber
	store       TranscriptionStore
	media       MediaStore
	tempDir     string
}

func NewTranscriptionService(tr Transcriber, store TranscriptionStore, media MediaStore, tempDir string) (*TranscriptionService, error) {
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "blogsmith_uploads")
	}
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp upload dir: %w", err)
	}
	return &TranscriptionService{
		transcriber: tr,
		store:       store,
		media:       media,
		tempDir:     tempDir,
	}, nil
}

func (s *TranscriptionService) Configured() bool {
	return s.transcriber.Configured()
}

// Process transcribes one uploaded audio stream. originalName is the client's
// filename, used for its extension. On success it also stores the audio and a
// transcription record, returning the record ID when persistence worked.
// The returned error is reserved for local staging failures; remote failures
// come back inside the result.
func (s *TranscriptionService) Process(ctx context.Context, originalName string, upload io.ReadSeeker) (models.TranscriptionResult, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	tempPath := filepath.Join(s.tempDir, fmt.Sprintf("upload_%s%s", uuid.NewString()[:8], ext))

	if err := writeTemp(tempPath, upload); err != nil {
		return models.TranscriptionResult{}, "", err
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			logger.WarnWithFields("could not remove temp upload", logger.Fields{
				"path": tempPath, "error": err.Error(),
			})
		}
	}()

	result := s.transcriber.Transcribe(ctx, tempPath)

	var recordID string
	if result.Success {
		recordID = s.persist(ctx, originalName, upload, result)
	}
	return result, recordID, nil
}

// History returns all stored transcription records, newest first.
func (s *TranscriptionService) History(ctx context.Context) ([]models.AudioTranscription, error) {
	return s.store.List(ctx)
}

// persist saves the original audio and the transcription record. Both steps
// are best-effort: any failure is logged and an empty record ID returned.
func (s *TranscriptionService) persist(ctx context.Context, originalName string, upload io.ReadSeeker, result models.TranscriptionResult) string {
	if s.store == nil || s.media == nil {
		return ""
	}

	if _, err := upload.Seek(0, io.SeekStart); err != nil {
		logger.WarnWithFields("could not rewind upload for storage", logger.Fields{"error": err.Error()})
		return ""
	}
	relPath, err := s.media.SaveAudio(originalName, upload)
	if err != nil {
		logger.WarnWithFields("could not store audio file", logger.Fields{"error": err.Error()})
		return ""
	}

	id, err := s.store.Create(ctx, &models.AudioTranscription{
		AudioFile:     relPath,
		Transcription: result,
	})
	if err != nil {
		logger.WarnWithFields("could not save transcription record", logger.Fields{"error": err.Error()})
		return ""
	}
	return id
}

func writeTemp(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save uploaded file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("save uploaded file: %w", err)
	}
	return nil
}
