package server

import (
	"context"

	"github.com/addozhang/nexus-mcp-server/internal/client"
	"github.com/stretchr/testify/mock"
)

type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, query client.SearchQuery) (*client.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.SearchResponse), args.Error(1)
}

func (m *MockSearchClient) SearchAll(ctx context.Context, query client.SearchQuery, maxItems int) ([]client.SearchResult, error) {
	args := m.Called(ctx, query, maxItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.SearchResult), args.Error(1)
}

func (m *MockSearchClient) GetComponents(ctx context.Context, repository, continuationToken string) (*client.SearchResponse, error) {
	args := m.Called(ctx, repository, continuationToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.SearchResponse), args.Error(1)
}
