package dto

// SuggestTitlesRequest is the POST /api/suggest-titles/ payload.
type SuggestTitlesRequest struct {
	Content string `json:"content" binding:"required,max=10000" example:"The content of the blog post..."`
}

// HealthResponse reports whether each AI client has a credential configured.
type HealthResponse struct {
	Status   string          `json:"status" example:"healthy"`
	Services map[string]bool `json:"services"`
}
