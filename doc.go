// Package huefy is the Go SDK for the Huefy template-email platform. It turns
// a (template key, data, recipient) triple into a validated API request,
// executes it with bounded retries and exponential backoff, classifies
// failures into a typed error taxonomy, and supports bulk dispatch with
// per-item success/failure reporting.
//
// The client's job is reliable request delivery to the platform; rendering,
// provider routing, and delivery guarantees are the platform's responsibility.
//
// # Basic Usage
//
//	client, err := huefy.New(huefy.Config{APIKey: "your-api-key"})
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	resp, err := client.SendEmail(ctx, &huefy.SendEmailRequest{
//	    TemplateKey: "welcome-email",
//	    Data: map[string]any{
//	        "name":    "John Doe",
//	        "company": "Acme Corp",
//	    },
//	    Recipient: "john@example.com",
//	})
//
// Configuration can also come from HUEFY_* environment variables (and an
// optional .env file):
//
//	client, err := huefy.NewFromEnv()
//
// # Error Handling
//
// Every failure is a concrete variant of the taxonomy, so callers can match
// on type or on the machine-readable code:
//
//	if _, err := client.SendEmail(ctx, req); err != nil {
//	    var notFound *huefy.TemplateNotFoundError
//	    switch {
//	    case errors.As(err, &notFound):
//	        log.Printf("unknown template %q", notFound.TemplateKey())
//	    case huefy.CodeOf(err) == huefy.ErrCodeRateLimit:
//	        // Throttled; the client already retried with backoff.
//	    }
//	}
//
// # Retry Logic
//
// Transient failures (network errors, timeouts, rate limiting, unclassified
// 5xx responses) are retried up to Config.RetryAttempts additional times with
// exponential backoff starting at Config.RetryDelay. Failures that indicate
// the request is structurally wrong (validation, authentication, unknown
// template, rejected recipient) are never retried. The default schedule is
// deterministic; opt into jitter via WithBackoff:
//
//	client, err := huefy.New(cfg, huefy.WithBackoff(huefy.ExponentialBackoff{
//	    InitialInterval: time.Second,
//	    MaxInterval:     30 * time.Second,
//	    Multiplier:      2,
//	    JitterFactor:    0.1,
//	}))
//
// # Bulk Sending
//
// SendBulkEmails fans the pipeline out over independent requests and reports
// one result per input, in input order. A failing item never aborts the rest:
//
//	results, _ := client.SendBulkEmails(ctx, requests)
//	for _, r := range results {
//	    if !r.Success {
//	        log.Printf("send to %s failed: %v", r.Recipient, r.Error)
//	    }
//	}
//
// # Observability
//
// Register SendHooks for lifecycle callbacks (start, success, error, retry)
// and WithLogger for slog debug records of attempts and retries. Both are
// observability-only and never affect control flow.
package huefy
