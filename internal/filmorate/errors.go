package filmorate

import (
	"fmt"
	"strings"
)

// APIError reports a non-success response from the service. Message holds
// the best message the response body offered, or a generic fallback keyed
// by the attempted operation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service returned status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// ValidationError reports client-side payload validation failures. The
// request is never issued when one is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Violations, "; ")
}

// errorBody covers both error shapes the service emits: the not-found form
// {"error", "description"} and the validation form {"violations": [...]}.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"description"`
	Violations  []struct {
		FieldName string `json:"fieldName"`
		Message   string `json:"message"`
	} `json:"violations"`
}

// message extracts the most specific human-readable message, or "".
func (b errorBody) message() string {
	if len(b.Violations) > 0 {
		parts := make([]string, 0, len(b.Violations))
		for _, v := range b.Violations {
			switch {
			case v.FieldName != "" && v.Message != "":
				parts = append(parts, v.FieldName+": "+v.Message)
			case v.Message != "":
				parts = append(parts, v.Message)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	if b.Description != "" {
		return b.Description
	}
	return b.Error
}
