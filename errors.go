package inputprompt

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or the input ends
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrRequired is reported when Enter is pressed on an empty line, the target
	// type has no empty value and no default is configured. It is shown to the
	// user as Messages.Required and never returned from Run.
	ErrRequired = errors.New("value is required")
)

// ConversionError reports that the typed text cannot be parsed as the target type.
type ConversionError struct {
	Input string // Text that failed to convert
	Type  string // Human readable name of the target type
	Err   error  // Underlying parse error, may be nil
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ValidationError reports that a validation rule rejected a converted value.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
