package client

import "context"

// SearchClient defines the read operations we perform against the Nexus
// search and components endpoints. Use NewSearchClient to obtain an
// implementation; the concrete type is unexported.
type SearchClient interface {
	// Search fetches a single page of components matching the query.
	Search(ctx context.Context, query SearchQuery) (*SearchResponse, error)
	// SearchAll follows continuation tokens until exhausted or maxItems
	// collected. Any page failure aborts the whole fetch.
	SearchAll(ctx context.Context, query SearchQuery, maxItems int) ([]SearchResult, error)
	// GetComponents lists components in a repository without search filters.
	GetComponents(ctx context.Context, repository, continuationToken string) (*SearchResponse, error)
}
