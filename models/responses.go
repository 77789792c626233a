package models

// ErrorResponse is the uniform body of every failed request.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`

	// ErrorCode carries the database SQLSTATE when the failure originated in
	// the store, and is omitted otherwise.
	ErrorCode string `json:"errorCode,omitempty"`
}

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewCommentResponse wraps a freshly created comment.
type NewCommentResponse struct {
	NewComment Comment `json:"newComment"`
}
