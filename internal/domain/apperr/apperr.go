package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a failure class of the advice pipeline and its collaborators.
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindUnsupportedLanguage Kind = "unsupported_language"
	KindEmptyTranscript     Kind = "empty_transcript"
	KindProviderError       Kind = "provider_error"
	KindProviderTimeout     Kind = "provider_timeout"
	KindWeatherUnavailable  Kind = "weather_unavailable"
	KindUnknownLanguage     Kind = "unknown_language"
	KindNotFoundOrForbidden Kind = "not_found"
	KindStorageError        Kind = "storage_error"
)

// AppError wraps an underlying error with a kind, an HTTP status and a safe message.
// Provider is set for failures translated from an external service.
type AppError struct {
	Err      error
	Kind     Kind
	Status   int
	Message  string
	Provider string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(kind Kind, status int, message string) *AppError {
	return &AppError{Kind: kind, Status: status, Message: message}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, kind Kind, status int, message string) *AppError {
	return &AppError{Err: err, Kind: kind, Status: status, Message: message}
}

// FromProvider translates a failure of the named external provider. A zero
// status defaults to 500 so upstream failures never surface as success.
func FromProvider(err error, provider string, status int, message string) *AppError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &AppError{Err: err, Kind: KindProviderError, Status: status, Message: message, Provider: provider}
}

// Timeout marks a provider call that exceeded its deadline.
func Timeout(err error, provider string) *AppError {
	return &AppError{
		Err:      err,
		Kind:     KindProviderTimeout,
		Status:   http.StatusGatewayTimeout,
		Message:  fmt.Sprintf("%s provider timed out", provider),
		Provider: provider,
	}
}

// StatusOf extracts the HTTP status of an error, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// KindOf extracts the kind of an error, defaulting to StorageError for
// untyped failures from the persistence layer and below.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorageError
}
