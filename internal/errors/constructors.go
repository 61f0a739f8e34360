package errors

import "fmt"

// Config errors

// ConfigNotFound reports a config file missing on disk. The message carries the
// path exactly as the user supplied it.
func ConfigNotFound(path string) *DocBuilderError {
	return New(CategoryConfig, SeverityFatal, fmt.Sprintf("config file does not exist: %s", path)).
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocBuilderError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocBuilderError {
	return New(CategoryValidation, SeverityFatal, fmt.Sprintf("validation failed: %s: %s", field, reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func PageNotFound(ref, path string) *DocBuilderError {
	return New(CategoryContent, SeverityError, fmt.Sprintf("page does not exist: %s", ref)).
		WithContext("ref", ref).
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *DocBuilderError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
