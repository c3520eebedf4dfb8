package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name        string
		creds       Credentials
		expectError bool
	}{
		{
			name:        "Valid HTTPS",
			creds:       Credentials{URL: "https://nexus.example.com", Username: "admin", Password: "secret", VerifySSL: true},
			expectError: false,
		},
		{
			name:        "Valid HTTP",
			creds:       Credentials{URL: "http://localhost:8081", Username: "admin", Password: "secret"},
			expectError: false,
		},
		{
			name:        "Unsupported scheme",
			creds:       Credentials{URL: "ftp://nexus.example.com", Username: "admin", Password: "secret"},
			expectError: true,
		},
		{
			name:        "Missing host",
			creds:       Credentials{URL: "https://", Username: "admin", Password: "secret"},
			expectError: true,
		},
		{
			name:        "Not a URL",
			creds:       Credentials{URL: "not a url", Username: "admin", Password: "secret"},
			expectError: true,
		},
		{
			name:        "Missing username",
			creds:       Credentials{URL: "https://nexus.example.com", Password: "secret"},
			expectError: true,
		},
		{
			name:        "Missing password",
			creds:       Credentials{URL: "https://nexus.example.com", Username: "admin"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchQueryParams(t *testing.T) {
	q := SearchQuery{Repository: "maven-central", Format: "maven2", Name: "maven-core"}
	params := q.params()

	assert.Equal(t, map[string]string{
		"repository": "maven-central",
		"format":     "maven2",
		"name":       "maven-core",
	}, params)
}
