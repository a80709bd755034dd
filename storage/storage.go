// Package storage persists uploaded binary files under the media directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Media writes uploaded audio files under <dir>/audio with generated names and
// returns paths relative to the media root, which is what gets persisted on
// transcription records.
type Media struct {
	dir string
}

func NewMedia(dir string) (*Media, error) {
	if dir == "" {
		dir = "media"
	}
	if err := os.MkdirAll(filepath.Join(dir, "audio"), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create media dir: %w", err)
	}
	return &Media{dir: dir}, nil
}

// SaveAudio stores the stream under a fresh name keeping the original
// extension, and returns the relative path ("audio/<name>").
func (m *Media) SaveAudio(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	relPath := filepath.Join("audio", uuid.NewString()+ext)

	f, err := os.Create(filepath.Join(m.dir, relPath))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return relPath, nil
}
