package huefy

import "time"

// Provider identifies a downstream delivery provider the Huefy platform can
// route a send through. When no provider is specified the platform picks its
// configured default.
type Provider string

const (
	ProviderSES       Provider = "ses"
	ProviderSendGrid  Provider = "sendgrid"
	ProviderMailgun   Provider = "mailgun"
	ProviderMailchimp Provider = "mailchimp"
)

// EmailStatus is the delivery state reported by the platform for an accepted
// send request.
type EmailStatus string

const (
	StatusSent   EmailStatus = "sent"
	StatusQueued EmailStatus = "queued"
	StatusFailed EmailStatus = "failed"
)

// SendEmailRequest describes a single templated email send. Data holds the
// substitution variables for the server-stored template; values are expected
// to be scalars (string, number, bool, nil) as the platform validates them
// authoritatively.
type SendEmailRequest struct {
	TemplateKey string         `json:"template_key"`
	Data        map[string]any `json:"data"`
	Recipient   string         `json:"recipient"`
	Options     *SendOptions   `json:"options,omitempty"`
}

// SendOptions carries optional per-send overrides.
type SendOptions struct {
	Provider Provider `json:"provider,omitempty"`
}

// SendEmailResponse is the platform's acknowledgement of an accepted send.
type SendEmailResponse struct {
	MessageID string      `json:"message_id"`
	Status    EmailStatus `json:"status"`
	Provider  Provider    `json:"provider"`
	Timestamp time.Time   `json:"timestamp"`
}

// BulkEmailResult reports the outcome of one item of a bulk send. Exactly one
// of Result and Error is set: Result when Success is true, Error otherwise.
type BulkEmailResult struct {
	Recipient string
	Success   bool
	Result    *SendEmailResponse
	Error     error
}

// ServiceStatus is the platform's self-reported health state.
type ServiceStatus string

const (
	ServiceHealthy   ServiceStatus = "healthy"
	ServiceDegraded  ServiceStatus = "degraded"
	ServiceUnhealthy ServiceStatus = "unhealthy"
)

// HealthStatus is returned by the platform's health endpoint. Uptime is
// reported in seconds.
type HealthStatus struct {
	Status  ServiceStatus `json:"status"`
	Version string        `json:"version"`
	Uptime  float64       `json:"uptime"`
}
