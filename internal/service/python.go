package service

import (
	"context"
	"sort"

	"github.com/addozhang/nexus-mcp-server/internal/client"
)

// SearchPythonPackages searches PyPI-format repositories for packages matching
// the given name. Both hyphen and underscore spellings of the name are looked
// up and the results merged, since the packaging ecosystem treats them as the
// same package.
func SearchPythonPackages(ctx context.Context, c client.SearchClient, name, repository string) (*PythonSearchResult, error) {
	var results []client.SearchResult
	for i, candidate := range nameCandidates(name) {
		found, err := c.SearchAll(ctx, client.SearchQuery{
			Repository: repository,
			Format:     FormatPyPI,
			Name:       candidate,
		}, client.DefaultMaxItems)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			results = found
		} else {
			results = mergeByID(results, found)
		}
	}

	return &PythonSearchResult{
		Count:    len(results),
		Packages: summarize(results),
	}, nil
}

// PythonVersionOptions identify the package whose versions are listed.
type PythonVersionOptions struct {
	PackageName       string
	Repository        string
	ContinuationToken string
}

// GetPythonVersions lists the versions of a package found on a single
// upstream page, newest first, with per-version assets accumulated across
// asset types (a wheel and an sdist share a version).
//
// The swapped-spelling fan-out only happens on the first page: a continuation
// token belongs to one upstream query and replaying the second lookup on
// every page would duplicate its results.
func GetPythonVersions(ctx context.Context, c client.SearchClient, opts PythonVersionOptions) (*PythonVersionListing, error) {
	page, err := c.Search(ctx, client.SearchQuery{
		Repository:        opts.Repository,
		Format:            FormatPyPI,
		Name:              opts.PackageName,
		ContinuationToken: opts.ContinuationToken,
	})
	if err != nil {
		return nil, err
	}

	items := page.Items
	if opts.ContinuationToken == "" {
		candidates := nameCandidates(opts.PackageName)
		if len(candidates) > 1 {
			second, err := c.Search(ctx, client.SearchQuery{
				Repository: opts.Repository,
				Format:     FormatPyPI,
				Name:       candidates[1],
			})
			if err != nil {
				return nil, err
			}
			items = mergeByID(items, second.Items)
		}
	}

	index := make(map[string]int, len(items))
	versions := make([]PythonVersionEntry, 0, len(items))
	for _, r := range items {
		i, ok := index[r.Version]
		if !ok {
			i = len(versions)
			index[r.Version] = i
			versions = append(versions, PythonVersionEntry{
				Version:    r.Version,
				Repository: r.Repository,
				Assets:     []AssetDetail{},
			})
		}
		versions[i].Assets = append(versions[i].Assets, assetDetails(r.Assets)...)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })

	return &PythonVersionListing{
		PackageName:       opts.PackageName,
		Count:             len(versions),
		Versions:          versions,
		ContinuationToken: page.ContinuationToken,
		HasMore:           page.ContinuationToken != "",
	}, nil
}
