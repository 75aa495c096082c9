package huefy

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// validateTemplatePayload is the wire shape of a template dry-run request.
type validateTemplatePayload struct {
	TemplateKey string         `json:"template_key"`
	TestData    map[string]any `json:"test_data,omitempty"`
}

type validateTemplateResponse struct {
	Valid bool `json:"valid"`
}

// ValidateTemplate dry-runs a template against test data on the platform and
// reports whether it renders. A false return with a nil error means the
// template exists but does not render with the given data; an unknown
// template key surfaces as a TemplateNotFoundError.
func (c *Client) ValidateTemplate(ctx context.Context, templateKey string, testData map[string]any) (bool, error) {
	if err := validateTemplateKey(templateKey); err != nil {
		return false, err
	}

	body, err := c.do(ctx, http.MethodPost, "/templates/validate", validateTemplatePayload{
		TemplateKey: templateKey,
		TestData:    testData,
	})
	if err != nil {
		return false, err
	}

	var resp validateTemplateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, newMalformedResponseError("could not decode template validation response", err)
	}
	return resp.Valid, nil
}

func validateTemplateKey(templateKey string) error {
	if strings.TrimSpace(templateKey) == "" {
		return newValidationError([]string{"Template key is required"})
	}
	return nil
}
