package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/addozhang/nexus-mcp-server/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	// apiBase is the REST prefix shared by every Nexus v1 endpoint.
	apiBase = "/service/rest/v1"

	requestTimeout = 30 * time.Second
)

// HTTPClient is a base HTTP client using resty for Nexus API requests.
// Credentials are attached as Basic Auth and never logged.
type HTTPClient struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPClient creates an HTTPClient for the given credentials. The URL must
// already be validated by the caller.
func NewHTTPClient(creds Credentials) *HTTPClient {
	baseURL := strings.TrimSuffix(creds.URL, "/")
	c := resty.New().
		SetBaseURL(baseURL + apiBase).
		SetHeader("Accept", "application/json").
		SetBasicAuth(creds.Username, creds.Password).
		SetTimeout(requestTimeout)
	if !creds.VerifySSL {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	return &HTTPClient{client: c, baseURL: baseURL}
}

// Get performs a GET against the given endpoint with the provided query
// parameters and maps HTTP-level failures to the client error taxonomy.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, params map[string]string) (*resty.Response, error) {
	request := c.client.R().
		SetContext(ctx).
		SetQueryParams(params)

	utils.Logger.Debug("HTTP request start",
		zap.String("method", http.MethodGet),
		zap.String("endpoint", endpoint))

	start := time.Now()
	response, err := request.Get(endpoint)
	duration := time.Since(start)
	if err != nil {
		utils.Logger.Error("HTTP request failed",
			zap.String("method", http.MethodGet),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, c.connectionError(err)
	}

	if response.StatusCode() >= 400 {
		return nil, c.statusError(endpoint, response, duration)
	}

	utils.Logger.Debug("HTTP request completed",
		zap.String("method", http.MethodGet),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", response.StatusCode()),
		zap.Duration("duration", duration))

	return response, nil
}

func (c *HTTPClient) connectionError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ConnectionError{Message: fmt.Sprintf("Request timed out: %v", err)}
	}
	return &ConnectionError{Message: fmt.Sprintf("Failed to connect to Nexus at %s: %v", c.baseURL, err)}
}

func (c *HTTPClient) statusError(endpoint string, response *resty.Response, duration time.Duration) error {
	body := strings.TrimSpace(response.String())
	if len(body) > 1000 {
		body = body[:1000] + "…"
	}

	status := response.StatusCode()
	switch {
	case status == http.StatusNotFound:
		// 404 is a routine outcome for existence probes; keep the log quiet
		utils.Logger.Debug("API returned 404 (resource not found)",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", duration))
		return &NotFoundError{Endpoint: endpoint}
	case status == http.StatusUnauthorized:
		return &AuthError{Message: "Authentication failed. Check username and password."}
	case status == http.StatusForbidden:
		return &AuthError{Message: "Access denied. Insufficient permissions."}
	case status >= 500:
		utils.Logger.Error("API error response (server)",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", status),
			zap.String("body", body),
			zap.Duration("duration", duration))
		return &APIError{StatusCode: status, Body: body}
	default:
		utils.Logger.Warn("API error response (client)",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", status),
			zap.String("body", body),
			zap.Duration("duration", duration))
		return &APIError{StatusCode: status, Body: body}
	}
}
