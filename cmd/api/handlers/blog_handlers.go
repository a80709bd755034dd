package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogsmith/cmd/api/dto"
	"blogsmith/cmd/api/services"
)

// ListBlogPostsHandler godoc
// @Summary      List blog posts
// @Description  List all blog posts, newest first
// @Tags         blog-posts
// @Produce      json
// @Success      200  {object}  dto.BlogPostListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /blog-posts/ [get]
func ListBlogPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.BlogPostListResponse{Success: true, Posts: posts})
	}
}

// CreateBlogPostHandler godoc
// @Summary      Create a blog post
// @Tags         blog-posts
// @Accept       json
// @Param        request  body  dto.CreateBlogPostRequest  true  "New post"
// @Produce      json
// @Success      201  {object}  dto.BlogPostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /blog-posts/ [post]
func CreateBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateBlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Error:   "invalid data",
				Details: err.Error(),
			})
			return
		}

		post, err := svc.Create(c.Request.Context(), req.Title, req.Content, req.Author)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, dto.BlogPostResponse{Success: true, Post: *post})
	}
}
