package entity

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("invalid response")

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// nested prefixes the field path of a ValidationError returned for a
// sub-object.
func nested(parent string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Field: parent + "." + verr.Field, Reason: verr.Reason}
	}
	return fmt.Errorf("%s: %w", parent, err)
}
