package draft

import (
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrPayloadInvalid wraps every payload validation failure.
var ErrPayloadInvalid = errors.New("draft: payload invalid")

// payloadSchema constrains generation payloads before any field reaches the
// draft buffer. Unknown top-level keys are rejected so a renamed field in
// the generator surfaces here instead of silently dropping proposals.
const payloadSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string"},
		"sku": {"type": "string"},
		"description": {"type": "string"},
		"short_description": {"type": "string"},
		"format": {"type": "string", "enum": ["html", "markdown"]},
		"seo": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"title": {"type": "string"},
				"description": {"type": "string"}
			}
		},
		"images": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": ["string", "number"]},
					"src": {"type": "string"},
					"alt": {"type": "string"}
				}
			}
		}
	}
}`

var compiledPayloadSchema = jsonschema.MustCompileString("draft-payload.json", payloadSchema)

// ValidationError carries the schema locations that failed.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft: payload invalid: %s", strings.Join(e.Issues, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrPayloadInvalid
}

// validatePayload checks a decoded payload against the generation schema.
func validatePayload(payload map[string]any) error {
	if err := compiledPayloadSchema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &ValidationError{Issues: collectIssues(validationErr)}
		}
		return &ValidationError{Issues: []string{err.Error()}}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "#"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}
	var issues []string
	for _, cause := range err.Causes {
		issues = append(issues, collectIssues(cause)...)
	}
	return issues
}
