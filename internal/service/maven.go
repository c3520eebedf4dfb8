package service

import (
	"context"
	"sort"

	"github.com/addozhang/nexus-mcp-server/internal/client"
)

// MavenSearchOptions are the filters for a Maven artifact search. At least one
// of GroupID or ArtifactID must be set.
type MavenSearchOptions struct {
	GroupID    string
	ArtifactID string
	Version    string
	Repository string
}

// SearchMavenArtifacts searches Maven repositories by groupId, artifactId or
// version and returns matching artifacts with their download URLs.
func SearchMavenArtifacts(ctx context.Context, c client.SearchClient, opts MavenSearchOptions) (*MavenSearchResult, error) {
	if opts.GroupID == "" && opts.ArtifactID == "" {
		return nil, ErrMissingCoordinates
	}

	results, err := c.SearchAll(ctx, client.SearchQuery{
		Repository: opts.Repository,
		Format:     FormatMaven,
		Group:      opts.GroupID,
		Name:       opts.ArtifactID,
		Version:    opts.Version,
	}, client.DefaultMaxItems)
	if err != nil {
		return nil, err
	}

	return &MavenSearchResult{
		Count:     len(results),
		Artifacts: summarize(results),
	}, nil
}

// MavenVersionOptions identify the artifact whose versions are listed.
// ContinuationToken selects a follow-up page from an earlier listing.
type MavenVersionOptions struct {
	GroupID           string
	ArtifactID        string
	Repository        string
	ContinuationToken string
}

// GetMavenVersions lists the distinct versions of one artifact found on a
// single upstream page, newest first.
//
// Ordering is plain byte-wise string comparison, descending. That matches the
// upstream-observed behavior and is deliberately not semver-aware.
func GetMavenVersions(ctx context.Context, c client.SearchClient, opts MavenVersionOptions) (*MavenVersionListing, error) {
	page, err := c.Search(ctx, client.SearchQuery{
		Repository:        opts.Repository,
		Format:            FormatMaven,
		Group:             opts.GroupID,
		Name:              opts.ArtifactID,
		ContinuationToken: opts.ContinuationToken,
	})
	if err != nil {
		return nil, err
	}

	// Dedup by version string, first occurrence wins.
	seen := make(map[string]struct{}, len(page.Items))
	versions := make([]VersionEntry, 0, len(page.Items))
	for _, r := range page.Items {
		if _, ok := seen[r.Version]; ok {
			continue
		}
		seen[r.Version] = struct{}{}
		versions = append(versions, VersionEntry{
			Version:    r.Version,
			Repository: r.Repository,
			Assets:     assetRefs(r.Assets),
		})
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })

	return &MavenVersionListing{
		GroupID:           opts.GroupID,
		ArtifactID:        opts.ArtifactID,
		Count:             len(versions),
		Versions:          versions,
		ContinuationToken: page.ContinuationToken,
		HasMore:           page.ContinuationToken != "",
	}, nil
}
