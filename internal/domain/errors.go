package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a request whose shape violates the reconciliation contract,
// such as an entry list that is not a list or an unknown matching mode.
// Malformed fields inside individual entries never produce this error.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewInvalidInputError builds an InvalidInputError for the given field.
func NewInvalidInputError(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ErrRunNotFound is returned when a stored reconciliation run does not exist.
var ErrRunNotFound = errors.New("reconciliation run not found")
