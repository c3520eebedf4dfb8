package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultMaxItems caps paginated fetches so a broad query cannot walk an
// arbitrarily large repository.
const DefaultMaxItems = 1000

// searchClient is the unexported concrete implementation of SearchClient.
type searchClient struct {
	*HTTPClient
}

// NewSearchClient validates the credentials and returns a SearchClient bound
// to them.
func NewSearchClient(creds Credentials) (SearchClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &searchClient{HTTPClient: NewHTTPClient(creds)}, nil
}

func (c *searchClient) Search(ctx context.Context, query SearchQuery) (*SearchResponse, error) {
	resp, err := c.Get(ctx, "/search", query.params())
	if err != nil {
		return nil, err
	}
	var result SearchResponse
	if err := json.Unmarshal(resp.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("search: failed to unmarshal response: %w", err)
	}
	return &result, nil
}

func (c *searchClient) SearchAll(ctx context.Context, query SearchQuery, maxItems int) ([]SearchResult, error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	var all []SearchResult
	query.ContinuationToken = ""
	for len(all) < maxItems {
		page, err := c.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.ContinuationToken == "" {
			break
		}
		query.ContinuationToken = page.ContinuationToken
	}

	if len(all) > maxItems {
		all = all[:maxItems]
	}
	return all, nil
}

func (c *searchClient) GetComponents(ctx context.Context, repository, continuationToken string) (*SearchResponse, error) {
	params := map[string]string{"repository": repository}
	if continuationToken != "" {
		params["continuationToken"] = continuationToken
	}
	resp, err := c.Get(ctx, "/components", params)
	if err != nil {
		return nil, err
	}
	var result SearchResponse
	if err := json.Unmarshal(resp.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("get components: failed to unmarshal response: %w", err)
	}
	return &result, nil
}
