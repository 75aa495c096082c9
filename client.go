package huefy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	defaultUserAgent       = "huefy-go/1.0"
	defaultBulkConcurrency = 8

	// maxBodySize bounds how much of a response body is read, preventing
	// memory exhaustion on misbehaving endpoints.
	maxBodySize = 64 * 1024
)

// Client sends templated emails through the Huefy platform. It is immutable
// after construction and safe for concurrent use; create it once and share it.
type Client struct {
	cfg             Config
	httpClient      *http.Client
	backoff         BackoffStrategy
	hooks           SendHooks
	logger          *slog.Logger
	userAgent       string
	bulkConcurrency int
}

// New creates a client from the given configuration. Zero-valued optional
// fields get defaults (see Config); an empty APIKey is rejected.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		hooks:           NopHooks{},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:       defaultUserAgent,
		bulkConcurrency: defaultBulkConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.backoff == nil {
		c.backoff = defaultBackoff(c.cfg.RetryDelay)
	}
	return c, nil
}

// MustNew creates a client and panics on invalid configuration. Use it when
// a misconfigured client should prevent startup.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var loadDotEnv sync.Once

// NewFromEnv creates a client configured from HUEFY_* environment variables.
// A .env file in the working directory is loaded once if present.
func NewFromEnv(opts ...Option) (*Client, error) {
	loadDotEnv.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return New(cfg, opts...)
}

// SendEmail renders the named template with the given data and delivers it to
// the recipient. The request is validated locally first, then executed with
// bounded retries; every returned error is one of the package's typed
// variants.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	c.hooks.OnSendStart(req)

	if err := validateSendEmailRequest(req); err != nil {
		c.hooks.OnSendError(req, err)
		return nil, err
	}

	resp, err := c.executeWithRetry(ctx, req)
	if err != nil {
		c.hooks.OnSendError(req, err)
		return nil, err
	}

	c.hooks.OnSendSuccess(req, resp)
	return resp, nil
}

// executeWithRetry runs single attempts until one succeeds, the failure is
// not retryable, or attempts are exhausted. Attempts are strictly sequential.
func (c *Client) executeWithRetry(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.RetryAttempts; attempt++ {
		resp, err := c.sendOnce(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !IsRetryableError(err) || attempt == c.cfg.RetryAttempts {
			return nil, err
		}

		delay := c.backoff.NextInterval(attempt + 1)
		c.logger.DebugContext(ctx, "send attempt failed, retrying",
			slog.String("template_key", req.TemplateKey),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		c.hooks.OnRetry(attempt+1, err)
	}
	return nil, lastErr
}

// sendEmailPayload is the wire shape of a send request.
type sendEmailPayload struct {
	TemplateKey string         `json:"template_key"`
	Data        map[string]any `json:"data"`
	Recipient   string         `json:"recipient"`
	Options     *SendOptions   `json:"options,omitempty"`
}

// sendOnce makes exactly one HTTP attempt with no retry logic.
func (c *Client) sendOnce(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/emails/send", sendEmailPayload{
		TemplateKey: req.TemplateKey,
		Data:        req.Data,
		Recipient:   req.Recipient,
		Options:     req.Options,
	})
	if err != nil {
		// Server-side 404s on the send endpoint mean the template key; attach
		// it so callers don't have to correlate manually.
		var notFound *TemplateNotFoundError
		if errors.As(err, &notFound) {
			if notFound.Details == nil {
				notFound.Details = make(map[string]any)
			}
			if _, ok := notFound.Details["templateKey"]; !ok {
				notFound.Details["templateKey"] = req.TemplateKey
			}
		}
		return nil, err
	}

	var resp SendEmailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newMalformedResponseError("could not decode send response", err)
	}
	// A 2xx without a message ID is a protocol mismatch, never a transient
	// failure, so it is classified as malformed and not retried.
	if resp.MessageID == "" {
		return nil, newMalformedResponseError("send response is missing message_id", nil)
	}
	return &resp, nil
}

// do executes a single HTTP request against the platform with the per-attempt
// timeout applied and the response classified. It returns the raw body of a
// 2xx response; every failure comes back as a typed taxonomy error.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, newValidationError([]string{fmt.Sprintf("request body is not encodable: %v", err)})
		}
		reqBody = bytes.NewReader(raw)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, newNetworkError(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.cfg.APIKey)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, newTimeoutError(c.cfg.Timeout, err)
		}
		return nil, newNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, newTimeoutError(c.cfg.Timeout, err)
		}
		return nil, newNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body)
	}
	return body, nil
}
