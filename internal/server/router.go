package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewStreamableHTTPHandler wraps the MCP server in the streamable HTTP
// transport, stateless, with request headers made visible to tool handlers
// for credential extraction.
func NewStreamableHTTPHandler(s *mcpserver.MCPServer) http.Handler {
	return mcpserver.NewStreamableHTTPServer(s,
		mcpserver.WithHTTPContextFunc(WithRequestHeaders),
		mcpserver.WithStateLess(true),
	)
}

// NewRouter builds the Gin router serving the liveness endpoint and the MCP
// transport.
func NewRouter(mcpHandler http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET(HealthEndpoint, health)
	router.Any(MCPEndpoint, gin.WrapH(mcpHandler))

	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}
