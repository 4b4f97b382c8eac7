// Package api defines the JSON request and response types shared by all HTTP handlers.
package api

// RegisterRequest is the request body for POST /register.
// Gin binding tags enforce presence, email format and password length.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CommentRequest is the request body for POST /comment/:id.
// Text is validated in the usecase (trimmed emptiness), not by binding tags,
// so an empty string reaches the domain error path.
type CommentRequest struct {
	Text string `json:"text"`
}

// TitleSuggestionRequest is the request body for POST /v1/insights/title.
type TitleSuggestionRequest struct {
	Description string `json:"description" binding:"required"`
}

// TokenResponse is returned by /register and /login.
// Token is the opaque session token (also set as the "token" cookie);
// APIToken is a signed JWT for the programmatic /v1 endpoints.
type TokenResponse struct {
	Token    string `json:"token"`
	APIToken string `json:"api_token,omitempty"`
}

// ErrorResponse is the structured error body for API routes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is returned by POST /comment/:id.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LikeResponse is returned by POST /like/:id with the post-toggle total.
type LikeResponse struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}

// VideoResponse describes a single video in feed and watch-page payloads.
type VideoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	Filename    string `json:"filename"`
	Private     bool   `json:"private"`
	Views       int64  `json:"views"`
	UploadDate  string `json:"upload_date"`
}

// CommentResponse describes a single comment in a watch-page payload.
type CommentResponse struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// VideoPageResponse is the data bag for GET /video/:id.
type VideoPageResponse struct {
	Video    VideoResponse     `json:"video"`
	Likes    int64             `json:"likes"`
	Comments []CommentResponse `json:"comments"`
}

// FeedResponse is the data bag for GET /.
type FeedResponse struct {
	Videos []VideoResponse `json:"videos"`
}

// ThumbnailLabelResponse describes one detected thumbnail label.
type ThumbnailLabelResponse struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

// ThumbnailInsightsResponse is returned by POST /v1/insights/thumbnail.
type ThumbnailInsightsResponse struct {
	Labels []ThumbnailLabelResponse `json:"labels"`
}

// TitleSuggestionResponse is returned by POST /v1/insights/title.
type TitleSuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}
