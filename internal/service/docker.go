package service

import (
	"context"
	"sort"

	"github.com/addozhang/nexus-mcp-server/internal/client"
)

// ListDockerImages lists every Docker image in a repository, grouping search
// hits by image name and collecting their distinct version strings as tags.
func ListDockerImages(ctx context.Context, c client.SearchClient, repository string) (*DockerImageListing, error) {
	results, err := c.SearchAll(ctx, client.SearchQuery{
		Repository: repository,
		Format:     FormatDocker,
	}, client.DefaultMaxItems)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(results))
	images := make([]ImageEntry, 0, len(results))
	for _, r := range results {
		i, ok := index[r.Name]
		if !ok {
			i = len(images)
			index[r.Name] = i
			images = append(images, ImageEntry{
				Name:       r.Name,
				Repository: r.Repository,
				Tags:       []string{},
			})
		}
		if r.Version != "" && !containsTag(images[i].Tags, r.Version) {
			images[i].Tags = append(images[i].Tags, r.Version)
		}
	}
	for i := range images {
		sort.Sort(sort.Reverse(sort.StringSlice(images[i].Tags)))
	}

	return &DockerImageListing{
		Repository: repository,
		Count:      len(images),
		Images:     images,
	}, nil
}

// GetDockerTags lists every tag of one image, newest tag string first, with
// asset details for each tag.
func GetDockerTags(ctx context.Context, c client.SearchClient, repository, imageName string) (*DockerTagListing, error) {
	results, err := c.SearchAll(ctx, client.SearchQuery{
		Repository: repository,
		Format:     FormatDocker,
		Name:       imageName,
	}, client.DefaultMaxItems)
	if err != nil {
		return nil, err
	}

	tags := make([]TagEntry, 0, len(results))
	for _, r := range results {
		tags = append(tags, TagEntry{
			Tag:        r.Version,
			Repository: r.Repository,
			Assets:     assetDetails(r.Assets),
		})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Tag > tags[j].Tag })

	return &DockerTagListing{
		Repository: repository,
		ImageName:  imageName,
		Count:      len(tags),
		Tags:       tags,
	}, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
