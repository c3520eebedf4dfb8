package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/addozhang/nexus-mcp-server/internal/client"
	"github.com/mark3labs/mcp-go/mcp"
)

type contextKey string

// headersKey carries the inbound HTTP headers through the MCP dispatch so
// tool handlers can fall back to header-supplied credentials.
const headersKey contextKey = "nexus-headers"

// WithRequestHeaders is the HTTPContextFunc installed on the streamable HTTP
// transport. The stdio transport never calls it, leaving the context bare.
func WithRequestHeaders(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, headersKey, r.Header)
}

func headersFromContext(ctx context.Context) http.Header {
	if h, ok := ctx.Value(headersKey).(http.Header); ok {
		return h
	}
	return nil
}

// MissingCredentialsError lists the credential headers that were absent.
type MissingCredentialsError struct {
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("Missing required Nexus credentials in headers: %s", strings.Join(e.Missing, ", "))
}

// ResolveCredentials builds the Nexus credentials for one tool invocation.
// Explicit tool arguments win; headers injected by the HTTP transport fill
// any gaps. VerifySSL defaults to true.
func ResolveCredentials(ctx context.Context, req mcp.CallToolRequest) (client.Credentials, error) {
	headers := headersFromContext(ctx)
	header := func(name string) string {
		if headers == nil {
			return ""
		}
		return headers.Get(name)
	}

	url := req.GetString(ArgNexusURL, header(HeaderNexusURL))
	username := req.GetString(ArgNexusUsername, header(HeaderNexusUsername))
	password := req.GetString(ArgNexusPassword, header(HeaderNexusPassword))

	var missing []string
	if url == "" {
		missing = append(missing, HeaderNexusURL)
	}
	if username == "" {
		missing = append(missing, HeaderNexusUsername)
	}
	if password == "" {
		missing = append(missing, HeaderNexusPassword)
	}
	if len(missing) > 0 {
		return client.Credentials{}, &MissingCredentialsError{Missing: missing}
	}

	verifySSL := true
	if headerValue := header(HeaderNexusVerifySSL); headerValue != "" {
		verifySSL = parseVerifySSL(headerValue)
	}
	if args := req.GetArguments(); args != nil {
		if raw, ok := args[ArgNexusVerifySSL]; ok {
			switch v := raw.(type) {
			case bool:
				verifySSL = v
			case string:
				verifySSL = parseVerifySSL(v)
			}
		}
	}

	return client.Credentials{
		URL:       url,
		Username:  username,
		Password:  password,
		VerifySSL: verifySSL,
	}, nil
}

// parseVerifySSL treats false/0/no (any case) as false; every other value,
// including garbage, keeps verification on.
func parseVerifySSL(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}
