package api

import (
	"context"
	"io"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	projectHandler     projectHandler
	teamMemberHandler  teamMemberHandler
	testimonialHandler testimonialHandler
	blogPostHandler    blogPostHandler
	contactHandler     contactHandler
	settingsHandler    settingsHandler
	uploadHandler      uploadHandler
	statsHandler       statsHandler
}

// ObjectStore is the slice of the storage layer the upload endpoint needs.
type ObjectStore interface {
	BucketFor(name string) (string, bool)
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error)
	SignedURL(ctx context.Context, bucket, key string) (string, error)
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
