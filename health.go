package huefy

import (
	"context"
	"encoding/json"
	"net/http"
)

// HealthCheck reports the platform's status, version, and uptime. It makes a
// single attempt bounded by the configured timeout; there is no retry logic
// on this path.
func (c *Client) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	body, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, newMalformedResponseError("could not decode health response", err)
	}
	if status.Status == "" {
		return nil, newMalformedResponseError("health response is missing status", nil)
	}
	return &status, nil
}
