package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// connectionArgs are appended to every tool so stdio deployments can pass
// credentials inline. HTTP deployments may use X-Nexus-* headers instead.
func connectionArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString(ArgNexusURL,
			mcp.Description("Base URL of the Nexus instance (e.g., https://nexus.example.com)")),
		mcp.WithString(ArgNexusUsername,
			mcp.Description("Username for Nexus authentication")),
		mcp.WithString(ArgNexusPassword,
			mcp.Description("Password for Nexus authentication")),
		mcp.WithBoolean(ArgNexusVerifySSL,
			mcp.Description("Verify SSL certificates (set to false for self-signed certs)")),
	}
}

func newTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)
	all = append(all, connectionArgs()...)
	return mcp.NewTool(name, all...)
}

// NewMCPServer builds the MCP server with all six Nexus query tools
// registered against the given handler.
func NewMCPServer(h *Handler) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(ServerName, ServerVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithInstructions(serverInstructions),
	)

	s.AddTool(newTool(ToolSearchMavenArtifact,
		"Search for Maven artifacts in Nexus Repository Manager. Search Maven repositories by groupId, artifactId, or version. Returns matching artifacts with their versions and download URLs.",
		mcp.WithString("group_id",
			mcp.Description("Maven groupId to search for (e.g., 'org.apache.maven')")),
		mcp.WithString("artifact_id",
			mcp.Description("Maven artifactId to search for (e.g., 'maven-core')")),
		mcp.WithString("version",
			mcp.Description("Specific version to search for")),
		mcp.WithString("repository",
			mcp.Description("Repository name to search in (searches all if not specified)")),
	), h.dispatch(ToolSearchMavenArtifact, h.searchMavenArtifact))

	s.AddTool(newTool(ToolGetMavenVersions,
		"Get versions of a specific Maven artifact with pagination. Returns a paginated list of available versions for the specified groupId:artifactId, sorted from newest to oldest. Use continuation_token to fetch subsequent pages.",
		mcp.WithString("group_id",
			mcp.Required(),
			mcp.Description("Maven groupId (e.g., 'org.apache.maven')")),
		mcp.WithString("artifact_id",
			mcp.Required(),
			mcp.Description("Maven artifactId (e.g., 'maven-core')")),
		mcp.WithString("repository",
			mcp.Description("Repository name to search in (searches all if not specified)")),
		mcp.WithNumber("page_size",
			mcp.Description("Number of versions per page (default 20)")),
		mcp.WithString("continuation_token",
			mcp.Description("Token for next page (from previous response)")),
	), h.dispatch(ToolGetMavenVersions, h.getMavenVersions))

	s.AddTool(newTool(ToolSearchPythonPackage,
		"Search for Python packages in Nexus Repository Manager. Searches PyPI-format repositories for packages matching the given name. Handles Python package naming conventions (underscores vs hyphens).",
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Python package name to search for (e.g., 'requests')")),
		mcp.WithString("repository",
			mcp.Description("Repository name to search in (searches all if not specified)")),
	), h.dispatch(ToolSearchPythonPackage, h.searchPythonPackage))

	s.AddTool(newTool(ToolGetPythonVersions,
		"Get versions of a specific Python package with pagination. Returns paginated versions of the package with format information (wheel, sdist, etc.) and download URLs.",
		mcp.WithString("package_name",
			mcp.Required(),
			mcp.Description("Python package name (e.g., 'requests')")),
		mcp.WithString("repository",
			mcp.Description("Repository name to search in (searches all if not specified)")),
		mcp.WithNumber("page_size",
			mcp.Description("Number of versions per page (default 20)")),
		mcp.WithString("continuation_token",
			mcp.Description("Token for next page (from previous response)")),
	), h.dispatch(ToolGetPythonVersions, h.getPythonVersions))

	s.AddTool(newTool(ToolListDockerImages,
		"List Docker images in a Nexus repository. Returns all Docker images available in the specified repository with their latest tags.",
		mcp.WithString("repository",
			mcp.Required(),
			mcp.Description("Docker repository name to list images from")),
	), h.dispatch(ToolListDockerImages, h.listDockerImages))

	s.AddTool(newTool(ToolGetDockerTags,
		"Get all tags for a specific Docker image. Returns detailed information about all tags for the specified image, including digest and asset information when available.",
		mcp.WithString("repository",
			mcp.Required(),
			mcp.Description("Docker repository name")),
		mcp.WithString("image_name",
			mcp.Required(),
			mcp.Description("Docker image name (e.g., 'my-app' or 'library/nginx')")),
	), h.dispatch(ToolGetDockerTags, h.getDockerTags))

	return s
}
