package huefy

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultBaseURL       = "https://api.huefy.dev/api/v1"
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// Config holds client configuration. It is read once at construction and
// never mutated afterwards; there is no runtime reconfiguration.
//
// RetryAttempts is the number of additional attempts after the first failure,
// so a send makes at most RetryAttempts+1 requests. A zero value gets the
// default of 3; use WithNoRetry to disable retries entirely.
type Config struct {
	APIKey        string        `env:"HUEFY_API_KEY"`
	BaseURL       string        `env:"HUEFY_BASE_URL" envDefault:"https://api.huefy.dev/api/v1"`
	Timeout       time.Duration `env:"HUEFY_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"HUEFY_RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay    time.Duration `env:"HUEFY_RETRY_DELAY" envDefault:"1s"`
}

// Validate checks the configuration for values that would make the client
// unusable. Zero values for optional fields are fine; they get defaults.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("%w: BaseURL: %w", ErrInvalidConfig, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: BaseURL must use http or https", ErrInvalidConfig)
		}
		if u.Host == "" {
			return fmt.Errorf("%w: BaseURL host is required", ErrInvalidConfig)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: Timeout must not be negative", ErrInvalidConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: RetryAttempts must not be negative", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: RetryDelay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// withDefaults returns a copy with zero fields replaced by defaults and the
// base URL normalized (no trailing slash).
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}
