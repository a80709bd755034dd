package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsmith/cmd/api/dto"
	"blogsmith/cmd/api/services"
)

// HealthHandler godoc
// @Summary      Service health
// @Description  Reports whether each AI client is configured, without making remote calls
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health/ [get]
func HealthHandler(transcriptions *services.TranscriptionService, titleSvc *services.TitleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status: "healthy",
			Services: map[string]bool{
				"transcription":    transcriptions.Configured(),
				"title_generation": titleSvc.Configured(),
			},
		})
	}
}

// HomeHandler serves the integrated web interface.
func HomeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}
