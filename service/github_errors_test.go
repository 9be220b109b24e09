package service

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorInspector(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		rateLimit bool
		auth      bool
		transport bool
	}{
		{
			name:      "Graphql rate limit message",
			err:       errors.New("API rate limit exceeded for user ID 1."),
			rateLimit: true,
		},
		{
			name:      "Too many requests status",
			err:       errors.New(`non-200 OK status code: 429 Too Many Requests body: ""`),
			rateLimit: true,
			transport: true,
		},
		{
			name:      "Unauthorized status",
			err:       errors.New(`non-200 OK status code: 401 Unauthorized body: "{\"message\":\"Bad credentials\"}"`),
			auth:      true,
			transport: true,
		},
		{
			name:      "Server error status",
			err:       errors.New(`non-200 OK status code: 503 Service Unavailable body: ""`),
			transport: true,
		},
		{
			name:      "Dial failure",
			err:       &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: errors.New("dial tcp: connection refused")},
			transport: true,
		},
		{
			name:      "Wrapped dial failure",
			err:       fmt.Errorf("query failed: %w", &url.Error{Op: "Post", URL: "https://api.github.com/graphql", Err: errors.New("EOF")}),
			transport: true,
		},
		{
			name: "Graphql payload error mentioning a number",
			err:  errors.New("Could not resolve to a User with the login of '401'."),
		},
		{
			name: "Graphql payload error mentioning a timeout",
			err:  errors.New("Something went wrong while executing your query. This may be the result of a timeout, or it could be a GitHub bug."),
		},
		{
			name: "Nil error",
			err:  nil,
		},
	}

	inspector := newErrorInspector()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rateLimit, inspector.IsRateLimitError(tt.err))
			assert.Equal(t, tt.auth, inspector.IsAuthError(tt.err))
			assert.Equal(t, tt.transport, inspector.IsTransportError(tt.err))
		})
	}
}
