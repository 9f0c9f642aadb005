package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "voxscribe/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindBadRequest         ErrorKind = "bad_request"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindProcessing         ErrorKind = "processing"
	KindExport             ErrorKind = "export"
	KindClipboard          ErrorKind = "clipboard"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindInternal           ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindProcessing:
		return http.StatusBadGateway
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// WrapError wraps an existing error with API error context
func WrapError(err error, kind ErrorKind, message string) *APIError {
	if err == nil {
		return nil
	}

	apiErr := &APIError{
		Kind:    kind,
		Message: message,
	}

	// If the original error is already an APIError, preserve details
	var origAPIErr *APIError
	if stderrors.As(err, &origAPIErr) {
		if origAPIErr.Details != nil {
			apiErr.Details = origAPIErr.Details
		}
		if origAPIErr.Code != "" {
			apiErr.Code = origAPIErr.Code
		}
	}

	return apiErr
}

// FromDomain translates an error from the app layer. Errors with no mapping
// become internal errors without leaking their message.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *apperrors.ValidationError
	var processingErr *apperrors.ProcessingError
	var clipboardErr *apperrors.ClipboardError
	var exportErr *apperrors.ExportError

	switch {
	case stderrors.As(err, &validationErr):
		return &APIError{
			Kind:    KindValidation,
			Message: validationErr.Message,
			Details: validationErr.Details,
			Code:    "INVALID_FILE",
		}
	case stderrors.Is(err, apperrors.ErrBusy):
		return &APIError{Kind: KindConflict, Message: err.Error(), Code: "PIPELINE_BUSY"}
	case stderrors.Is(err, apperrors.ErrNotRunning):
		return &APIError{Kind: KindConflict, Message: err.Error(), Code: "NOTHING_TO_CANCEL"}
	case stderrors.Is(err, apperrors.ErrNoResult):
		return &APIError{Kind: KindNotFound, Message: err.Error(), Code: "NO_RESULT"}
	case stderrors.Is(err, apperrors.ErrEntryNotFound):
		return &APIError{Kind: KindNotFound, Message: err.Error(), Code: "ENTRY_NOT_FOUND"}
	case stderrors.Is(err, apperrors.ErrUnsupportedFormat):
		return &APIError{
			Kind:    KindBadRequest,
			Message: err.Error(),
			Details: map[string]string{"format": "must be one of txt, srt, vtt"},
			Code:    "UNSUPPORTED_FORMAT",
		}
	case stderrors.As(err, &processingErr):
		return &APIError{Kind: KindProcessing, Message: processingErr.Error(), Code: "PROCESSING_FAILED"}
	case stderrors.As(err, &exportErr):
		return &APIError{Kind: KindExport, Message: exportErr.Error(), Code: "EXPORT_FAILED"}
	case stderrors.As(err, &clipboardErr):
		return &APIError{Kind: KindClipboard, Message: clipboardErr.Error(), Code: "CLIPBOARD_FAILED"}
	default:
		return NewInternalError("Internal server error")
	}
}
