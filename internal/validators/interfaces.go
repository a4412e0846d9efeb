// Package validators implements per-operation request validation.
//
// Each inbound request body is checked against the field rules of its
// operation; failures are reported as an ordered list of {field, msg} pairs
// that the HTTP layer serializes into the {"errors":[...]} envelope.
package validators

import (
	"context"
)

// Validator validates inbound request models before they reach the service
// layer.
//
// A failed validation returns a *ValidationError carrying one entry per
// violated rule; any other error indicates a misuse (unsupported type).
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
