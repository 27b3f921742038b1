package models

// ErrorResponse represents an error payload returned by the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// SearchResponse represents a response for the search and trending endpoints
// swagger:model SearchResponse
type SearchResponse struct {
	// List of posts matching the search
	Posts []Post `json:"posts"`
	// Pagination token for the next page, empty when no further pages exist
	After string `json:"after,omitempty"`
	// Search query
	Query string `json:"query"`
	// Requested limit
	Limit int `json:"limit"`
}

// CommentsResponse represents a response for the comments endpoint
// swagger:model CommentsResponse
type CommentsResponse struct {
	// Post ID the comments belong to
	PostID string `json:"post_id"`
	// Top-level comments in upstream order
	Comments []Comment `json:"comments"`
	// Count of comments returned
	Count int `json:"count"`
}

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	Status string `json:"status"`
	// Configured Reddit base URL
	RedditBaseURL string `json:"reddit_base_url"`
	// Configured inference model name
	Model string `json:"model"`
}
