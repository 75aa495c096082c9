package huefy

import (
	"regexp"
	"strings"
)

// emailRegex accepts the basic local@domain.tld shape. The platform performs
// authoritative recipient validation; this check only avoids round-trips for
// obviously malformed addresses.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateSendEmailRequest checks a request before any network call. All
// rules are evaluated independently so the caller sees every violation at
// once rather than fixing them one round-trip at a time.
func validateSendEmailRequest(req *SendEmailRequest) error {
	if req == nil {
		return newValidationError([]string{"Request is required"})
	}

	var violations []string

	if strings.TrimSpace(req.TemplateKey) == "" {
		violations = append(violations, "Template key is required")
	}

	switch {
	case req.Recipient == "":
		violations = append(violations, "Recipient email is required")
	case !emailRegex.MatchString(req.Recipient):
		violations = append(violations, "Invalid email address")
	}

	if len(req.Data) == 0 {
		violations = append(violations, "Template data is required")
	}

	if len(violations) == 0 {
		return nil
	}
	return newValidationError(violations)
}
