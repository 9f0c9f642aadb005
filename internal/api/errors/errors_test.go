package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "voxscribe/internal/app/errors"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        apperrors.NewValidationError("type", "not audio"),
			wantKind:   KindValidation,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_FILE",
		},
		{
			name:       "busy",
			err:        fmt.Errorf("submit: %w", apperrors.ErrBusy),
			wantKind:   KindConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "PIPELINE_BUSY",
		},
		{
			name:       "not running",
			err:        apperrors.ErrNotRunning,
			wantKind:   KindConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "NOTHING_TO_CANCEL",
		},
		{
			name:       "entry not found",
			err:        apperrors.Wrapf(apperrors.ErrEntryNotFound, "id %s", "9"),
			wantKind:   KindNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ENTRY_NOT_FOUND",
		},
		{
			name:       "no result",
			err:        apperrors.ErrNoResult,
			wantKind:   KindNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NO_RESULT",
		},
		{
			name:       "unsupported format",
			err:        apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "format %q", "pdf"),
			wantKind:   KindBadRequest,
			wantStatus: http.StatusBadRequest,
			wantCode:   "UNSUPPORTED_FORMAT",
		},
		{
			name:       "processing",
			err:        &apperrors.ProcessingError{Source: "a.mp3", Attempts: 1, Err: context.DeadlineExceeded},
			wantKind:   KindProcessing,
			wantStatus: http.StatusBadGateway,
			wantCode:   "PROCESSING_FAILED",
		},
		{
			name:       "export",
			err:        &apperrors.ExportError{FileName: "a.txt", Err: stderrors.New("disk full")},
			wantKind:   KindExport,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "EXPORT_FAILED",
		},
		{
			name:       "unknown",
			err:        stderrors.New("secret internals"),
			wantKind:   KindInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus())
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.NotContains(t, apiErr.Message, "secret")
		})
	}
}

func TestFromDomainKeepsAPIError(t *testing.T) {
	orig := NewBadRequestError("bad page")
	assert.Same(t, orig, FromDomain(fmt.Errorf("wrapped: %w", orig)))
	assert.Nil(t, FromDomain(nil))
}

func TestFromDomainValidationDetails(t *testing.T) {
	apiErr := FromDomain(apperrors.NewValidationError("size", "too large"))
	assert.Equal(t, map[string]string{"size": "too large"}, apiErr.Details)
}

func TestWrapError(t *testing.T) {
	orig := &APIError{Kind: KindValidation, Details: map[string]string{"q": "bad"}, Code: "X"}
	wrapped := WrapError(orig, KindBadRequest, "query rejected")

	assert.Equal(t, KindBadRequest, wrapped.Kind)
	assert.Equal(t, "X", wrapped.Code)
	assert.Equal(t, "bad", wrapped.Details["q"])
	assert.Nil(t, WrapError(nil, KindInternal, "x"))
}
