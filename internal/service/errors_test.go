package service

import (
	"errors"
	"testing"

	"github.com/addozhang/nexus-mcp-server/internal/client"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Auth error",
			err:      &client.AuthError{Message: "Access denied. Insufficient permissions."},
			expected: "Authentication error: Access denied. Insufficient permissions.",
		},
		{
			name:     "Connection error",
			err:      &client.ConnectionError{Message: "Failed to connect to Nexus at https://nexus: dial tcp: refused"},
			expected: "Connection error: Failed to connect to Nexus at https://nexus: dial tcp: refused",
		},
		{
			name:     "Not found",
			err:      &client.NotFoundError{Endpoint: "/search"},
			expected: "Not found: Resource not found: /search",
		},
		{
			name:     "Generic API error",
			err:      &client.APIError{StatusCode: 502, Body: "bad gateway"},
			expected: "Nexus error: HTTP error: 502 - bad gateway",
		},
		{
			name:     "Missing coordinates passes through verbatim",
			err:      ErrMissingCoordinates,
			expected: "At least one of group_id or artifact_id must be provided",
		},
		{
			name:     "Anything else is an invalid parameter",
			err:      errors.New("Invalid Nexus URL: not a url"),
			expected: "Invalid parameters: Invalid Nexus URL: not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorMessage(tt.err))
		})
	}
}
