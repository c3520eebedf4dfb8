package server

const (
	ServerName    = "nexus-mcp"
	ServerVersion = "1.0.0"
)

const (
	HealthEndpoint = "/health"
	MCPEndpoint    = "/mcp"
)

// Credential transport headers, matched case-insensitively.
const (
	HeaderNexusURL       = "X-Nexus-Url"
	HeaderNexusUsername  = "X-Nexus-Username"
	HeaderNexusPassword  = "X-Nexus-Password"
	HeaderNexusVerifySSL = "X-Nexus-Verify-Ssl"
)

// Connection arguments accepted by every tool. Explicit arguments take
// precedence over the headers above.
const (
	ArgNexusURL       = "nexus_url"
	ArgNexusUsername  = "nexus_username"
	ArgNexusPassword  = "nexus_password"
	ArgNexusVerifySSL = "nexus_verify_ssl"
)

const (
	ToolSearchMavenArtifact = "search_maven_artifact"
	ToolGetMavenVersions    = "get_maven_versions"
	ToolSearchPythonPackage = "search_python_package"
	ToolGetPythonVersions   = "get_python_versions"
	ToolListDockerImages    = "list_docker_images"
	ToolGetDockerTags       = "get_docker_tags"
)

const StatusHealthy = "healthy"

const serverInstructions = `Nexus MCP Server - Query Sonatype Nexus Repository Manager.

This server provides tools to search and query Maven, Python (PyPI), and Docker
repositories hosted in Nexus Repository Manager.

All tools require Nexus connection credentials, either as tool arguments
(nexus_url, nexus_username, nexus_password) or as HTTP request headers
(X-Nexus-Url, X-Nexus-Username, X-Nexus-Password).

Available tools:
- search_maven_artifact: Search for Maven artifacts by group/artifact ID
- get_maven_versions: Get all versions of a specific Maven artifact
- search_python_package: Search for Python packages
- get_python_versions: Get all versions of a Python package
- list_docker_images: List Docker images in a repository
- get_docker_tags: Get tags for a specific Docker image`
