package huefy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	huefy "github.com/teracrafts/huefy-go"
)

func TestClient_ValidateTemplate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/templates/validate", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "welcome-email", payload["template_key"])
		assert.Equal(t, map[string]any{"name": "Test"}, payload["test_data"])

		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	valid, err := client.ValidateTemplate(context.Background(), "welcome-email", map[string]any{"name": "Test"})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestClient_ValidateTemplate_DoesNotRender(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"valid":false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	valid, err := client.ValidateTemplate(context.Background(), "welcome-email", map[string]any{})
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestClient_ValidateTemplate_EmptyKey(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ValidateTemplate(context.Background(), "  ", nil)

	var validationErr *huefy.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_ValidateTemplate_UnknownTemplate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"TEMPLATE_NOT_FOUND","message":"no such template","details":{"templateKey":"nope"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ValidateTemplate(context.Background(), "nope", nil)

	var notFound *huefy.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.TemplateKey())
}
