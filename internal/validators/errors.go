package validators

import (
	"errors"
	"strings"

	"github.com/devconnector/devconnector/models"
)

// ErrUnsupportedType is returned when Validate receives a model it has no
// rules for.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError aggregates every violated field rule of a single request.
// It is returned by [Validator.Validate] and unwrapped by the HTTP layer
// into a 400 response with the {"errors":[...]} body.
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements the error interface by joining all field messages.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Msg)
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

// AsValidationError extracts a *ValidationError from err if one is present
// in its chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	ok := errors.As(err, &validationErr)
	return validationErr, ok
}
