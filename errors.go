package huefy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is returned by constructors when the client configuration
// is unusable. It is deliberately separate from the API error taxonomy below:
// configuration problems are caller bugs detected before any request is made.
var ErrInvalidConfig = errors.New("huefy: invalid client configuration")

// ErrorCode is a machine-readable identifier for an API failure. Codes are
// stable across SDK versions so callers can match on them instead of parsing
// error messages.
type ErrorCode string

const (
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeAuthentication    ErrorCode = "AUTHENTICATION_FAILED"
	ErrCodeTemplateNotFound  ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeInvalidRecipient  ErrorCode = "INVALID_RECIPIENT"
	ErrCodeProvider          ErrorCode = "PROVIDER_ERROR"
	ErrCodeRateLimit         ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeNetwork           ErrorCode = "NETWORK_ERROR"
	ErrCodeTimeout           ErrorCode = "TIMEOUT_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeUnknown           ErrorCode = "UNKNOWN_ERROR"
)

// APIError is the base type for every failure surfaced by the client. Each
// concrete variant embeds it, so callers can either match variants with
// errors.As or inspect the code via CodeOf.
//
// HTTPStatus is zero when no HTTP response was obtained (transport failures
// and timeouts).
type APIError struct {
	Code       ErrorCode
	Message    string
	Details    map[string]any
	HTTPStatus int

	cause error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying transport error, if any, so callers can still
// reach stdlib sentinels like context.DeadlineExceeded via errors.Is.
func (e *APIError) Unwrap() error { return e.cause }

func (e *APIError) errorCode() ErrorCode { return e.Code }

// detail returns a string detail by key, tolerating both snake_case and
// camelCase keys since the platform has used both spellings.
func (e *APIError) detail(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := e.Details[k].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ValidationError reports malformed input, detected either client-side before
// any network call or by the platform's authoritative validation.
type ValidationError struct{ *APIError }

// Violations returns the individual validation failure messages when the
// error was produced by client-side validation. Server-side validation errors
// may carry no violation list.
func (e *ValidationError) Violations() []string {
	v, _ := e.Details["violations"].([]string)
	return v
}

// AuthenticationError reports a rejected API key.
type AuthenticationError struct{ *APIError }

// TemplateNotFoundError reports a template key the platform does not know.
type TemplateNotFoundError struct{ *APIError }

// TemplateKey returns the offending template key when the platform included
// it in the error details.
func (e *TemplateNotFoundError) TemplateKey() string {
	k, _ := e.detail("templateKey", "template_key")
	return k
}

// InvalidRecipientError reports a recipient the platform rejected even though
// it passed the local format check, such as a blocklisted domain.
type InvalidRecipientError struct{ *APIError }

// ProviderError reports a failure from the selected downstream delivery
// provider. Details carry provider-specific diagnostic text.
type ProviderError struct{ *APIError }

// RateLimitError reports platform-level throttling.
type RateLimitError struct{ *APIError }

// ResetAt returns the time after which a retry is sensible, when the platform
// included it in the error details.
func (e *RateLimitError) ResetAt() (time.Time, bool) {
	raw, ok := e.detail("reset_at", "resetAt")
	if !ok {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// NetworkError reports a transport failure before any HTTP response was
// obtained (DNS, connection refused, TLS failure).
type NetworkError struct{ *APIError }

// TimeoutError reports that no response arrived within the per-attempt
// timeout.
type TimeoutError struct{ *APIError }

func newNetworkError(cause error) *NetworkError {
	return &NetworkError{&APIError{
		Code:    ErrCodeNetwork,
		Message: "request failed before a response was received",
		cause:   cause,
	}}
}

func newTimeoutError(timeout time.Duration, cause error) *TimeoutError {
	return &TimeoutError{&APIError{
		Code:    ErrCodeTimeout,
		Message: fmt.Sprintf("no response within %s", timeout),
		Details: map[string]any{"timeout": timeout.String()},
		cause:   cause,
	}}
}

func newValidationError(violations []string) *ValidationError {
	return &ValidationError{&APIError{
		Code:    ErrCodeValidation,
		Message: strings.Join(violations, "; "),
		Details: map[string]any{"violations": violations},
	}}
}

func newMalformedResponseError(msg string, cause error) *APIError {
	return &APIError{
		Code:    ErrCodeMalformedResponse,
		Message: msg,
		cause:   cause,
	}
}

// errorResponse is the platform's wire shape for 4xx/5xx bodies.
type errorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// errorFromResponse classifies a non-2xx HTTP response into the taxonomy.
// The server-supplied code wins when recognized; otherwise classification
// falls back to the HTTP status.
func errorFromResponse(statusCode int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er) // tolerate non-JSON bodies, fall back on status

	base := &APIError{
		Code:       ErrorCode(er.Code),
		Message:    er.Message,
		Details:    er.Details,
		HTTPStatus: statusCode,
	}
	if base.Message == "" {
		base.Message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	switch er.Code {
	case "VALIDATION_ERROR", "INVALID_TEMPLATE_DATA":
		base.Code = ErrCodeValidation
		return &ValidationError{base}
	case "AUTHENTICATION_FAILED", "INVALID_API_KEY":
		base.Code = ErrCodeAuthentication
		return &AuthenticationError{base}
	case "TEMPLATE_NOT_FOUND":
		return &TemplateNotFoundError{base}
	case "INVALID_RECIPIENT":
		return &InvalidRecipientError{base}
	case "PROVIDER_ERROR":
		return &ProviderError{base}
	case "RATE_LIMIT_EXCEEDED", "RATE_LIMITED":
		base.Code = ErrCodeRateLimit
		return &RateLimitError{base}
	}

	// Unknown or missing code: classify by HTTP status.
	switch statusCode {
	case 401:
		base.Code = ErrCodeAuthentication
		return &AuthenticationError{base}
	case 404:
		base.Code = ErrCodeTemplateNotFound
		return &TemplateNotFoundError{base}
	case 429:
		base.Code = ErrCodeRateLimit
		return &RateLimitError{base}
	case 400, 422:
		base.Code = ErrCodeValidation
		return &ValidationError{base}
	}

	if base.Code == "" {
		base.Code = ErrCodeUnknown
	}
	return base
}

// IsRetryableError reports whether re-attempting the same request may succeed
// without caller intervention. Transport failures, timeouts, throttling, and
// unclassified 5xx responses are retryable; errors indicating the request is
// structurally wrong are not.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var (
		network   *NetworkError
		timeout   *TimeoutError
		rateLimit *RateLimitError
	)
	if errors.As(err, &network) || errors.As(err, &timeout) || errors.As(err, &rateLimit) {
		return true
	}

	var (
		validation *ValidationError
		auth       *AuthenticationError
		notFound   *TemplateNotFoundError
		recipient  *InvalidRecipientError
		provider   *ProviderError
	)
	if errors.As(err, &validation) || errors.As(err, &auth) ||
		errors.As(err, &notFound) || errors.As(err, &recipient) ||
		errors.As(err, &provider) {
		return false
	}

	var base *APIError
	if errors.As(err, &base) {
		return base.HTTPStatus >= 500
	}
	return false
}

type coded interface{ errorCode() ErrorCode }

// CodeOf extracts the machine-readable error code from any error produced by
// this package. It returns the empty string for foreign errors.
func CodeOf(err error) ErrorCode {
	var c coded
	if errors.As(err, &c) {
		return c.errorCode()
	}
	return ""
}
