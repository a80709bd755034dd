package dto

import "blogsmith/models"

// TranscriptionResponse is the POST /api/transcribe/ payload: the
// transcription result plus the stored record ID when persistence succeeded.
type TranscriptionResponse struct {
	models.TranscriptionResult
	TranscriptionID string `json:"transcription_id,omitempty"`
}

// TranscriptionListResponse wraps the transcription history, newest first.
type TranscriptionListResponse struct {
	Success        bool                        `json:"success"`
	Transcriptions []models.AudioTranscription `json:"transcriptions"`
}
