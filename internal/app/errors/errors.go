package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Common error types
var (
	// Intake errors
	ErrBusy       = New("intake pipeline is busy")
	ErrNotRunning = New("no submission in flight")
	ErrNoResult   = New("no transcription result available")

	// History errors
	ErrEntryNotFound = New("history entry not found")

	// Export errors
	ErrUnsupportedFormat = New("unsupported export format")

	// Configuration errors
	ErrInvalidConfig = New("invalid configuration")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// ValidationError reports a rejected input. It is raised before any
// processing state change.
type ValidationError struct {
	Message string
	Details map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s is invalid: %s", field, reason),
		Details: map[string]string{field: reason},
	}
}

func (e *ValidationError) Error() string {
	if len(e.Details) <= 1 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(fields, ", "))
}

// ProcessingError reports a failure during the asynchronous processing phase.
type ProcessingError struct {
	Source   string
	Attempts int
	Err      error
}

func (e *ProcessingError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("processing %s failed after %d attempts: %v", e.Source, e.Attempts, e.Err)
	}
	return fmt.Sprintf("processing %s failed: %v", e.Source, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// ClipboardError reports that the host rejected a copy action.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("could not copy text to clipboard: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// ExportError reports that the host rejected a save action.
type ExportError struct {
	FileName string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("could not save %s: %v", e.FileName, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsProcessingError reports whether err is or wraps a *ProcessingError
func IsProcessingError(err error) bool {
	var target *ProcessingError
	return stderrors.As(err, &target)
}

// IsClipboardError reports whether err is or wraps a *ClipboardError
func IsClipboardError(err error) bool {
	var target *ClipboardError
	return stderrors.As(err, &target)
}

// IsExportError reports whether err is or wraps an *ExportError
func IsExportError(err error) bool {
	var target *ExportError
	return stderrors.As(err, &target)
}
