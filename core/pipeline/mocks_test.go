package pipeline

import (
	"context"
	"io"
	"strings"

	"github.com/albash-builds/dj-newswire/core/interfaces"
)

// routedHTTPClient serves canned responses keyed by URL.
type routedHTTPClient struct {
	routes map[string]*mockResponse
}

func (m *routedHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if resp, ok := m.routes[url]; ok {
		return &mockResponse{statusCode: resp.statusCode, body: resp.body}, nil
	}
	return &mockResponse{statusCode: 404, body: "not found"}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}
