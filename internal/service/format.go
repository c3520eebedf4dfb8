package service

import (
	"strings"

	"github.com/addozhang/nexus-mcp-server/internal/client"
)

// assetRefs projects the compact downloadUrl/path view of a result's assets.
func assetRefs(assets []client.Asset) []AssetRef {
	refs := make([]AssetRef, 0, len(assets))
	for _, a := range assets {
		refs = append(refs, AssetRef{DownloadURL: a.DownloadURL, Path: a.Path})
	}
	return refs
}

// assetDetails projects assets including their content type.
func assetDetails(assets []client.Asset) []AssetDetail {
	details := make([]AssetDetail, 0, len(assets))
	for _, a := range assets {
		details = append(details, AssetDetail{
			DownloadURL: a.DownloadURL,
			Path:        a.Path,
			ContentType: a.ContentType,
		})
	}
	return details
}

// summarize shapes search hits for tool output.
func summarize(results []client.SearchResult) []ComponentSummary {
	summaries := make([]ComponentSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, ComponentSummary{
			Repository: r.Repository,
			Group:      r.Group,
			Name:       r.Name,
			Version:    r.Version,
			Format:     r.Format,
			Assets:     assetRefs(r.Assets),
		})
	}
	return summaries
}

// nameCandidates returns the lookup names for a Python package: the literal
// name, plus the hyphen/underscore-swapped spelling when it differs. PyPI
// treats the two as the same package, Nexus does not.
func nameCandidates(name string) []string {
	var swapped string
	if strings.Contains(name, "-") {
		swapped = strings.ReplaceAll(name, "-", "_")
	} else {
		swapped = strings.ReplaceAll(name, "_", "-")
	}
	if swapped == name {
		return []string{name}
	}
	return []string{name, swapped}
}

// mergeByID appends extra results whose id has not been seen yet.
func mergeByID(base, extra []client.SearchResult) []client.SearchResult {
	seen := make(map[string]struct{}, len(base))
	for _, r := range base {
		seen[r.ID] = struct{}{}
	}
	for _, r := range extra {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		base = append(base, r)
	}
	return base
}
