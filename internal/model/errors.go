package model

import "errors"

// InputError reports a user-actionable problem: a misconfiguration or an
// environment issue. Message and Details are shown to the user verbatim.
type InputError struct {
	Message string
	Details string

	cause error
}

// NewInputError builds an InputError with an optional remediation hint.
func NewInputError(message string, details ...string) *InputError {
	err := &InputError{Message: message}
	if len(details) > 0 {
		err.Details = details[0]
	}

	return err
}

func (e *InputError) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return e.Message + "\n" + e.Details
}

// Unwrap returns the error AsInputError converted, if any.
func (e *InputError) Unwrap() error {
	return e.cause
}

// UsageError reports a programmatic misuse of the pipeline.
type UsageError struct {
	Message string
}

// NewUsageError builds a UsageError.
func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}

func (e *UsageError) Error() string {
	return e.Message
}

// IsInputError reports whether err is or wraps an InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsUsageError reports whether err is or wraps a UsageError.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// AsInputError returns err unchanged when it already is an InputError and
// otherwise wraps it into one, keeping the original message as details.
func AsInputError(err error, message string) error {
	if err == nil {
		return nil
	}

	if IsInputError(err) {
		return err
	}

	inputErr := NewInputError(message, err.Error())
	inputErr.cause = err

	return inputErr
}
