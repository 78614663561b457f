package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the outbound HTTP contract used by the pipeline.
// Both feed fetches and article-page fetches go through this interface so
// tests can substitute canned responses.
type HTTPClient interface {
	// Get performs a GET request, applying the given headers. Redirects
	// are followed by the implementation. The context carries the
	// per-request deadline.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response wraps an HTTP response.
type Response interface {
	// StatusCode returns the HTTP status code
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the named response header
	Header(key string) string
}
