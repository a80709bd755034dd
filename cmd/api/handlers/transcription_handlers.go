package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"blogsmith/cmd/api/dto"
	"blogsmith/cmd/api/services"
)

// MaxUploadBytes caps uploaded audio at 25 MiB.
const MaxUploadBytes = 25 << 20

var allowedExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".aac", ".wma"}

func extensionAllowed(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// TranscribeHandler godoc
// @Summary      Transcribe audio with speaker diarization
// @Description  Upload an audio file, get back a diarized transcript
// @Tags         transcription
// @Accept       multipart/form-data
// @Param        audio_file  formData  file  true  "Audio file (mp3, wav, m4a, flac, ogg, aac, wma; max 25MB)"
// @Produce      json
// @Success      200  {object}  dto.TranscriptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /transcribe/ [post]
func TranscribeHandler(svc *services.TranscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("audio_file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err("no audio file provided"))
			return
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !extensionAllowed(ext) {
			c.JSON(http.StatusBadRequest, dto.Err(fmt.Sprintf(
				"unsupported file type, allowed: %s", strings.Join(allowedExtensions, ", "))))
			return
		}
		if fileHeader.Size > MaxUploadBytes {
			c.JSON(http.StatusBadRequest, dto.Err(fmt.Sprintf(
				"file too large, maximum size is 25MB, your file is %.1fMB",
				float64(fileHeader.Size)/(1024*1024))))
			return
		}

		upload, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(fmt.Sprintf("processing failed: %v", err)))
			return
		}
		defer upload.Close()

		result, recordID, err := svc.Process(c.Request.Context(), fileHeader.Filename, upload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(fmt.Sprintf("processing failed: %v", err)))
			return
		}

		c.JSON(http.StatusOK, dto.TranscriptionResponse{
			TranscriptionResult: result,
			TranscriptionID:     recordID,
		})
	}
}

// TranscriptionHistoryHandler godoc
// @Summary      List past transcriptions
// @Tags         transcription
// @Produce      json
// @Success      200  {object}  dto.TranscriptionListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /transcriptions/ [get]
func TranscriptionHistoryHandler(svc *services.TranscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.History(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.TranscriptionListResponse{
			Success:        true,
			Transcriptions: records,
		})
	}
}
