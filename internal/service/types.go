package service

// Package formats understood by the query logic. These are the Nexus
// repository format identifiers, not the public package-manager names.
const (
	FormatMaven  = "maven2"
	FormatPyPI   = "pypi"
	FormatDocker = "docker"
)

// AssetRef is the compact asset projection used in search results and Maven
// version listings.
type AssetRef struct {
	DownloadURL string `json:"downloadUrl"`
	Path        string `json:"path"`
}

// AssetDetail additionally carries the content type; used where the asset
// kind matters (wheel vs sdist, manifest media types).
type AssetDetail struct {
	DownloadURL string `json:"downloadUrl"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
}

// ComponentSummary is one search hit shaped for tool output.
type ComponentSummary struct {
	Repository string     `json:"repository"`
	Group      string     `json:"group"`
	Name       string     `json:"name"`
	Version    string     `json:"version"`
	Format     string     `json:"format"`
	Assets     []AssetRef `json:"assets"`
}

// MavenSearchResult is the response of the search_maven_artifact tool.
type MavenSearchResult struct {
	Count     int                `json:"count"`
	Artifacts []ComponentSummary `json:"artifacts"`
}

// VersionEntry is one distinct version of a Maven artifact.
type VersionEntry struct {
	Version    string     `json:"version"`
	Repository string     `json:"repository"`
	Assets     []AssetRef `json:"assets"`
}

// MavenVersionListing is one page of versions for a groupId:artifactId pair.
type MavenVersionListing struct {
	GroupID           string         `json:"groupId"`
	ArtifactID        string         `json:"artifactId"`
	Count             int            `json:"count"`
	Versions          []VersionEntry `json:"versions"`
	ContinuationToken string         `json:"continuationToken,omitempty"`
	HasMore           bool           `json:"hasMore"`
}

// PythonSearchResult is the response of the search_python_package tool.
type PythonSearchResult struct {
	Count    int                `json:"count"`
	Packages []ComponentSummary `json:"packages"`
}

// PythonVersionEntry accumulates every asset published for one version
// (a wheel and an sdist commonly share a version string).
type PythonVersionEntry struct {
	Version    string        `json:"version"`
	Repository string        `json:"repository"`
	Assets     []AssetDetail `json:"assets"`
}

// PythonVersionListing is one page of versions for a Python package.
type PythonVersionListing struct {
	PackageName       string               `json:"packageName"`
	Count             int                  `json:"count"`
	Versions          []PythonVersionEntry `json:"versions"`
	ContinuationToken string               `json:"continuationToken,omitempty"`
	HasMore           bool                 `json:"hasMore"`
}

// ImageEntry is one Docker image with its distinct tags.
type ImageEntry struct {
	Name       string   `json:"name"`
	Repository string   `json:"repository"`
	Tags       []string `json:"tags"`
}

// DockerImageListing is the response of the list_docker_images tool.
type DockerImageListing struct {
	Repository string       `json:"repository"`
	Count      int          `json:"count"`
	Images     []ImageEntry `json:"images"`
}

// TagEntry is one tag of a Docker image with its assets.
type TagEntry struct {
	Tag        string        `json:"tag"`
	Repository string        `json:"repository"`
	Assets     []AssetDetail `json:"assets"`
}

// DockerTagListing is the response of the get_docker_tags tool.
type DockerTagListing struct {
	Repository string     `json:"repository"`
	ImageName  string     `json:"imageName"`
	Count      int        `json:"count"`
	Tags       []TagEntry `json:"tags"`
}
