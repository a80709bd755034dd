package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsmith/cmd/api/dto"
	"blogsmith/cmd/api/services"
)

// SuggestTitlesHandler godoc
// @Summary      Suggest blog post titles
// @Description  Generate up to three title suggestions for the given content
// @Tags         titles
// @Accept       json
// @Param        request  body  dto.SuggestTitlesRequest  true  "Blog post content (max 10000 characters)"
// @Produce      json
// @Success      200  {object}  titles.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /suggest-titles/ [post]
func SuggestTitlesHandler(svc *services.TitleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SuggestTitlesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Error:   "invalid input data",
				Details: err.Error(),
			})
			return
		}

		// Failures past validation are reported in the result payload;
		// callers inspect the success flag.
		result := svc.Suggest(c.Request.Context(), req.Content)
		c.JSON(http.StatusOK, result)
	}
}
