package dto

import "blogsmith/models"

// CreateBlogPostRequest is the POST /api/blog-posts/ payload.
type CreateBlogPostRequest struct {
	Title   string  `json:"title" binding:"required,max=200" example:"My first post"`
	Content string  `json:"content" binding:"required" example:"Hello world"`
	Author  *string `json:"author,omitempty" example:"alice"`
}

// BlogPostResponse wraps a single created post.
type BlogPostResponse struct {
	Success bool            `json:"success"`
	Post    models.BlogPost `json:"post"`
}

// BlogPostListResponse wraps the post listing, newest first.
type BlogPostListResponse struct {
	Success bool              `json:"success"`
	Posts   []models.BlogPost `json:"posts"`
}
