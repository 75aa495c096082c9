package huefy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	huefy "github.com/teracrafts/huefy-go"
)

func TestClient_SendEmail_ValidationCollectsAllViolations(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Every rule violated at once: all three must be reported together.
	_, err := client.SendEmail(context.Background(), &huefy.SendEmailRequest{
		TemplateKey: "   ",
		Data:        nil,
		Recipient:   "not-an-email",
	})

	var validationErr *huefy.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"Template key is required",
		"Invalid email address",
		"Template data is required",
	}, validationErr.Violations())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_SendEmail_ValidationRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(req *huefy.SendEmailRequest)
		wantMsg string
	}{
		{
			name:    "empty template key",
			mutate:  func(req *huefy.SendEmailRequest) { req.TemplateKey = "" },
			wantMsg: "Template key is required",
		},
		{
			name:    "whitespace template key",
			mutate:  func(req *huefy.SendEmailRequest) { req.TemplateKey = "\t " },
			wantMsg: "Template key is required",
		},
		{
			name:    "empty recipient",
			mutate:  func(req *huefy.SendEmailRequest) { req.Recipient = "" },
			wantMsg: "Recipient email is required",
		},
		{
			name:    "recipient without at sign",
			mutate:  func(req *huefy.SendEmailRequest) { req.Recipient = "john.example.com" },
			wantMsg: "Invalid email address",
		},
		{
			name:    "recipient without tld",
			mutate:  func(req *huefy.SendEmailRequest) { req.Recipient = "john@example" },
			wantMsg: "Invalid email address",
		},
		{
			name:    "recipient with whitespace",
			mutate:  func(req *huefy.SendEmailRequest) { req.Recipient = "john doe@example.com" },
			wantMsg: "Invalid email address",
		},
		{
			name:    "nil data",
			mutate:  func(req *huefy.SendEmailRequest) { req.Data = nil },
			wantMsg: "Template data is required",
		},
		{
			name:    "empty data",
			mutate:  func(req *huefy.SendEmailRequest) { req.Data = map[string]any{} },
			wantMsg: "Template data is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
			}))
			defer server.Close()

			req := validRequest()
			tt.mutate(req)

			client := newTestClient(t, server.URL)
			_, err := client.SendEmail(context.Background(), req)

			var validationErr *huefy.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Violations(), tt.wantMsg)
			assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_SendEmail_NilRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.SendEmail(context.Background(), nil)

	var validationErr *huefy.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestClient_SendEmail_AcceptsValidVariants(t *testing.T) {
	t.Parallel()

	recipients := []string{
		"john@example.com",
		"john.doe+tag@sub.example.co.uk",
		"j@x.io",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message_id":"msg-ok","status":"sent","provider":"ses","timestamp":"2024-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for _, recipient := range recipients {
		req := validRequest()
		req.Recipient = recipient
		_, err := client.SendEmail(context.Background(), req)
		assert.NoError(t, err, "recipient %q should pass validation", recipient)
	}
}
