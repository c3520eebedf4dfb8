package service

import (
	"errors"
	"fmt"

	"github.com/addozhang/nexus-mcp-server/internal/client"
)

// ErrMissingCoordinates is returned when a Maven search names neither a group
// nor an artifact id. No upstream request is made in that case.
var ErrMissingCoordinates = errors.New("At least one of group_id or artifact_id must be provided")

// ErrorMessage converts an error from the client or service layer into the
// human-readable message surfaced at the tool boundary.
func ErrorMessage(err error) string {
	var authErr *client.AuthError
	var connErr *client.ConnectionError
	var notFoundErr *client.NotFoundError
	var apiErr *client.APIError

	switch {
	case errors.Is(err, ErrMissingCoordinates):
		return err.Error()
	case errors.As(err, &authErr):
		return fmt.Sprintf("Authentication error: %s", authErr.Error())
	case errors.As(err, &connErr):
		return fmt.Sprintf("Connection error: %s", connErr.Error())
	case errors.As(err, &notFoundErr):
		return fmt.Sprintf("Not found: %s", notFoundErr.Error())
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Nexus error: %s", apiErr.Error())
	default:
		return fmt.Sprintf("Invalid parameters: %s", err.Error())
	}
}
