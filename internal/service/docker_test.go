package service

import (
	"context"
	"testing"

	"github.com/addozhang/nexus-mcp-server/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListDockerImagesGroupsByName(t *testing.T) {
	mockClient := new(MockSearchClient)
	mockClient.On("SearchAll", mock.Anything, client.SearchQuery{
		Repository: "docker-hosted",
		Format:     FormatDocker,
	}, client.DefaultMaxItems).Return([]client.SearchResult{
		{ID: "1", Repository: "docker-hosted", Name: "my-app", Version: "1.0"},
		{ID: "2", Repository: "docker-hosted", Name: "my-app", Version: "2.0"},
		{ID: "3", Repository: "docker-hosted", Name: "my-app", Version: "2.0"}, // duplicate tag
		{ID: "4", Repository: "docker-hosted", Name: "nginx", Version: "latest"},
	}, nil)

	result, err := ListDockerImages(context.Background(), mockClient, "docker-hosted")
	require.NoError(t, err)

	assert.Equal(t, "docker-hosted", result.Repository)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Images, 2)

	assert.Equal(t, "my-app", result.Images[0].Name)
	// Distinct tags, descending string order
	assert.Equal(t, []string{"2.0", "1.0"}, result.Images[0].Tags)
	assert.Equal(t, "nginx", result.Images[1].Name)
	assert.Equal(t, []string{"latest"}, result.Images[1].Tags)
}

func TestListDockerImagesSkipsEmptyVersions(t *testing.T) {
	mockClient := new(MockSearchClient)
	mockClient.On("SearchAll", mock.Anything, mock.Anything, mock.Anything).Return([]client.SearchResult{
		{ID: "1", Name: "my-app", Version: ""},
	}, nil)

	result, err := ListDockerImages(context.Background(), mockClient, "docker-hosted")
	require.NoError(t, err)

	require.Len(t, result.Images, 1)
	assert.Empty(t, result.Images[0].Tags)
}

func TestGetDockerTags(t *testing.T) {
	mockClient := new(MockSearchClient)
	mockClient.On("SearchAll", mock.Anything, client.SearchQuery{
		Repository: "docker-hosted",
		Format:     FormatDocker,
		Name:       "my-app",
	}, client.DefaultMaxItems).Return([]client.SearchResult{
		{ID: "1", Repository: "docker-hosted", Name: "my-app", Version: "1.0", Assets: []client.Asset{
			{DownloadURL: "https://nexus/v2/my-app/manifests/1.0", Path: "v2/my-app/manifests/1.0", ContentType: "application/vnd.docker.distribution.manifest.v2+json"},
		}},
		{ID: "2", Repository: "docker-hosted", Name: "my-app", Version: "2.0"},
	}, nil)

	result, err := GetDockerTags(context.Background(), mockClient, "docker-hosted", "my-app")
	require.NoError(t, err)

	assert.Equal(t, "my-app", result.ImageName)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Tags, 2)
	// Descending by tag string
	assert.Equal(t, "2.0", result.Tags[0].Tag)
	assert.Equal(t, "1.0", result.Tags[1].Tag)
	require.Len(t, result.Tags[1].Assets, 1)
	assert.Equal(t, "application/vnd.docker.distribution.manifest.v2+json", result.Tags[1].Assets[0].ContentType)
}

func TestDockerErrorsSurfaceAsMessages(t *testing.T) {
	mockClient := new(MockSearchClient)
	mockClient.On("SearchAll", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &client.ConnectionError{Message: "Request timed out: context deadline exceeded"})

	_, err := ListDockerImages(context.Background(), mockClient, "docker-hosted")
	require.Error(t, err)
	assert.Equal(t, "Connection error: Request timed out: context deadline exceeded", ErrorMessage(err))
}
