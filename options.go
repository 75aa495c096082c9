package huefy

import (
	"log/slog"
	"net/http"
)

// Option customizes a Client at construction time. Options with invalid
// values are ignored so a misconfigured option can never produce a broken
// client.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Useful for custom
// transports, proxies, or testing. Note that per-attempt timeouts come from
// Config.Timeout, not from the client's Timeout field.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBackoff replaces the default deterministic exponential backoff. Pass an
// ExponentialBackoff with a non-zero JitterFactor to spread retries across
// concurrent bulk sends.
func WithBackoff(strategy BackoffStrategy) Option {
	return func(c *Client) {
		if strategy != nil {
			c.backoff = strategy
		}
	}
}

// WithHooks registers lifecycle callbacks invoked around send operations.
func WithHooks(hooks SendHooks) Option {
	return func(c *Client) {
		if hooks != nil {
			c.hooks = hooks
		}
	}
}

// WithLogger enables debug logging of attempts and retries. The client logs
// nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithBulkConcurrency bounds how many bulk items are in flight at once.
// Default is 8.
func WithBulkConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.bulkConcurrency = n
		}
	}
}

// WithNoRetry disables all retry attempts; every send makes exactly one
// request. Config.RetryAttempts cannot express this since its zero value
// means "use the default".
func WithNoRetry() Option {
	return func(c *Client) {
		c.cfg.RetryAttempts = 0
	}
}
