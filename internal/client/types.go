package client

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials holds the connection parameters for a Nexus instance.
// Every tool invocation resolves a fresh set; nothing is cached between calls.
type Credentials struct {
	URL       string `validate:"required"`
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	VerifySSL bool
}

// Validate checks that all required fields are present and that the URL is a
// well-formed http(s) URL with a host.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate credentials: %w", err)
	}
	parsed, err := url.Parse(c.URL)
	if err != nil || parsed.Host == "" || parsed.Scheme == "" {
		return fmt.Errorf("Invalid Nexus URL: %s", c.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	return nil
}

// Asset is a downloadable file (jar, wheel, manifest layer) attached to a
// component version.
type Asset struct {
	DownloadURL string         `json:"downloadUrl"`
	Path        string         `json:"path"`
	ID          string         `json:"id,omitempty"`
	Repository  string         `json:"repository,omitempty"`
	Format      string         `json:"format,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	Checksum    map[string]any `json:"checksum,omitempty"`
	FileSize    int64          `json:"fileSize,omitempty"`
}

// SearchResult is one component-version-repository row from the search API.
type SearchResult struct {
	ID         string  `json:"id"`
	Repository string  `json:"repository"`
	Group      string  `json:"group"`
	Name       string  `json:"name"`
	Version    string  `json:"version"`
	Format     string  `json:"format"`
	Assets     []Asset `json:"assets"`
}

// SearchResponse is one page of search results. ContinuationToken is empty on
// the last page.
type SearchResponse struct {
	Items             []SearchResult `json:"items"`
	ContinuationToken string         `json:"continuationToken"`
}

// SearchQuery collects the filters accepted by the search endpoint. Zero-value
// fields are omitted from the request.
type SearchQuery struct {
	Repository        string
	Format            string
	Group             string
	Name              string
	Version           string
	ContinuationToken string
}

func (q SearchQuery) params() map[string]string {
	params := map[string]string{
		"repository":        q.Repository,
		"format":            q.Format,
		"group":             q.Group,
		"name":              q.Name,
		"version":           q.Version,
		"continuationToken": q.ContinuationToken,
	}
	for k, v := range params {
		if v == "" {
			delete(params, k)
		}
	}
	return params
}
