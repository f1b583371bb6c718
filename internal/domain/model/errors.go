package model

import "errors"

// ErrInvalidInput is wrapped by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a caller-supplied value the packer refuses to work with.
type InputError struct {
	Field   string
	Message string
}

// Error returns the error message for InputError.
func (e *InputError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
