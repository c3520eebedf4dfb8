package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/addozhang/nexus-mcp-server/internal/client"
	"github.com/addozhang/nexus-mcp-server/internal/service"
	"github.com/addozhang/nexus-mcp-server/internal/utils"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ClientFactory builds a SearchClient for one invocation's credentials.
type ClientFactory func(creds client.Credentials) (client.SearchClient, error)

// Handler bundles the per-tool MCP handlers. Each invocation resolves
// credentials and builds a fresh client; nothing is shared between calls.
type Handler struct {
	newClient ClientFactory
}

// NewHandler constructs a Handler. A nil factory uses the real Nexus client.
func NewHandler(factory ClientFactory) *Handler {
	if factory == nil {
		factory = client.NewSearchClient
	}
	return &Handler{newClient: factory}
}

type errorPayload struct {
	Error string `json:"error"`
}

// errorResult wraps a message into the {"error": ...} payload. Tool calls
// never fail past this boundary; one bad query must not kill the session.
func errorResult(message string) *mcp.CallToolResult {
	encoded, _ := json.Marshal(errorPayload{Error: message})
	return mcp.NewToolResultText(string(encoded))
}

func jsonResult(payload any) *mcp.CallToolResult {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return errorResult(fmt.Sprintf("Invalid parameters: %s", err))
	}
	return mcp.NewToolResultText(string(encoded))
}

// toolFunc is the per-tool core: it gets a ready client and returns the
// JSON-serializable result object.
type toolFunc func(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error)

// dispatch wraps a toolFunc with credential resolution, client construction,
// logging, and error-to-message mapping.
func (h *Handler) dispatch(tool string, fn toolFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := utils.WithComponent("tools").With(
			zap.String("tool", tool),
			zap.String("request_id", uuid.NewString()))

		creds, err := ResolveCredentials(ctx, req)
		if err != nil {
			logger.Warn("Credential resolution failed", zap.Error(err))
			return errorResult(err.Error()), nil
		}

		c, err := h.newClient(creds)
		if err != nil {
			logger.Warn("Client construction failed", zap.Error(err))
			return errorResult(service.ErrorMessage(err)), nil
		}

		start := time.Now()
		payload, err := fn(ctx, c, req)
		if err != nil {
			logger.Warn("Tool call failed",
				zap.String("error", service.ErrorMessage(err)),
				zap.Duration("duration", time.Since(start)))
			return errorResult(service.ErrorMessage(err)), nil
		}

		logger.Debug("Tool call completed", zap.Duration("duration", time.Since(start)))
		return jsonResult(payload), nil
	}
}

func (h *Handler) searchMavenArtifact(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	return service.SearchMavenArtifacts(ctx, c, service.MavenSearchOptions{
		GroupID:    req.GetString("group_id", ""),
		ArtifactID: req.GetString("artifact_id", ""),
		Version:    req.GetString("version", ""),
		Repository: req.GetString("repository", ""),
	})
}

func (h *Handler) getMavenVersions(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	groupID, err := req.RequireString("group_id")
	if err != nil {
		return nil, err
	}
	artifactID, err := req.RequireString("artifact_id")
	if err != nil {
		return nil, err
	}
	return service.GetMavenVersions(ctx, c, service.MavenVersionOptions{
		GroupID:           groupID,
		ArtifactID:        artifactID,
		Repository:        req.GetString("repository", ""),
		ContinuationToken: req.GetString("continuation_token", ""),
	})
}

func (h *Handler) searchPythonPackage(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return nil, err
	}
	return service.SearchPythonPackages(ctx, c, name, req.GetString("repository", ""))
}

func (h *Handler) getPythonVersions(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	packageName, err := req.RequireString("package_name")
	if err != nil {
		return nil, err
	}
	return service.GetPythonVersions(ctx, c, service.PythonVersionOptions{
		PackageName:       packageName,
		Repository:        req.GetString("repository", ""),
		ContinuationToken: req.GetString("continuation_token", ""),
	})
}

func (h *Handler) listDockerImages(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	repository, err := req.RequireString("repository")
	if err != nil {
		return nil, err
	}
	return service.ListDockerImages(ctx, c, repository)
}

func (h *Handler) getDockerTags(ctx context.Context, c client.SearchClient, req mcp.CallToolRequest) (any, error) {
	repository, err := req.RequireString("repository")
	if err != nil {
		return nil, err
	}
	imageName, err := req.RequireString("image_name")
	if err != nil {
		return nil, err
	}
	return service.GetDockerTags(ctx, c, repository, imageName)
}
