package dto

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid input data"`
	Details any    `json:"details,omitempty"`
}

// Err builds an ErrorResponse without details.
func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
