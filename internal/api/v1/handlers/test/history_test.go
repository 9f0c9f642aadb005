package test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/api/v1/handlers"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/testutil"
)

func seedStore() *history.Store {
	return history.NewStore(history.DefaultEntries(), nil, nil)
}

func samplePage(query string) *dto.PaginatedHistoryResponse {
	page := history.Paginate(seedStore().Search(query), 1, 10)
	resp := dto.ToPaginatedHistoryResponse(page, query)
	return &resp
}

func TestHistoryHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		expectedTotal  string
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "default paging",
			url:  "/api/v1/history",
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("ListHistory", mock.Anything,
					dto.ListHistoryQuery{Page: 1, PageSize: 10}).
					Return(samplePage(""), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "5",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				entries := body["entries"].([]interface{})
				assert.Len(t, entries, 5)
				pagination := body["pagination"].(map[string]interface{})
				assert.Equal(t, float64(1), pagination["total_pages"])
				assert.Equal(t, "Showing 1 to 5 of 5 transcriptions", pagination["summary"])
			},
		},
		{
			name: "search query",
			url:  "/api/v1/history?q=podcast&page=1&page_size=5",
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("ListHistory", mock.Anything,
					dto.ListHistoryQuery{Query: "podcast", Page: 1, PageSize: 5}).
					Return(samplePage("podcast"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "1",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				entries := body["entries"].([]interface{})
				require.Len(t, entries, 1)
				assert.Equal(t, "podcast-episode-12.m4a", entries[0].(map[string]interface{})["source_name"])
				assert.Equal(t, "podcast", body["query"])
			},
		},
		{
			name: "no results",
			url:  "/api/v1/history?q=xyz",
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("ListHistory", mock.Anything, mock.Anything).
					Return(samplePage("xyz"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  "0",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Empty(t, body["entries"])
			},
		},
		{
			name:           "page below one",
			url:            "/api/v1/history?page=0",
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "must be at least 1", details["page"])
			},
		},
		{
			name:           "page size too large",
			url:            "/api/v1/history?page_size=500",
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "must be at most 100", details["page_size"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewHistoryHandler(mockServices.HistoryService)
			router.GET("/api/v1/history", handler.List)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedTotal != "" {
				assert.Equal(t, tt.expectedTotal, rec.Header().Get("X-Total-Count"))
			}
			tt.validateBody(t, decodeBody(t, rec))
			mockServices.HistoryService.AssertExpectations(t)
		})
	}
}

func TestHistoryHandler_EntryActions(t *testing.T) {
	entry := history.DefaultEntries()[0]
	ack := dto.ToAckResponse(history.Ack{
		Title:       "Transcription deleted",
		Description: fmt.Sprintf("%s has been removed from your history.", entry.SourceName),
		Entry:       entry,
	})

	tests := []struct {
		name           string
		method         string
		id             string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:   "delete acknowledges",
			method: "DELETE",
			id:     entry.ID,
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("DeleteEntry", mock.Anything, entry.ID).Return(&ack, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "meeting-recording-2024.mp3 has been removed from your history.", body["description"])
			},
		},
		{
			name:   "delete unknown entry",
			method: "DELETE",
			id:     "missing",
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("DeleteEntry", mock.Anything, "missing").Return(nil, apperrors.ErrEntryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "ENTRY_NOT_FOUND", body["code"])
			},
		},
		{
			name:   "view unknown entry",
			method: "GET",
			id:     "missing",
			setupMocks: func(ms *testutil.MockServices) {
				ms.HistoryService.On("ViewEntry", mock.Anything, "missing").Return(nil, apperrors.ErrEntryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewHistoryHandler(mockServices.HistoryService)
			router.GET("/api/v1/history/:id", handler.Get)
			router.DELETE("/api/v1/history/:id", handler.Delete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/v1/history/"+tt.id, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decodeBody(t, rec))
			mockServices.HistoryService.AssertExpectations(t)
		})
	}
}

func TestHistoryHandler_Export(t *testing.T) {
	entry := history.DefaultEntries()[1]

	t.Run("download vtt", func(t *testing.T) {
		router, mockServices := setupTestRouter(t)
		payload := export.ForEntry(entry, export.FormatVTT)
		mockServices.HistoryService.On("ExportEntry", mock.Anything, entry.ID, "vtt").Return(&payload, nil)

		handler := handlers.NewHistoryHandler(mockServices.HistoryService)
		router.GET("/api/v1/history/:id/export", handler.Export)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/history/"+entry.ID+"/export?format=vtt", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entry.Text, rec.Body.String())
		assert.Equal(t, `attachment; filename="interview-candidate-john.vtt"`, rec.Header().Get("Content-Disposition"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		router, mockServices := setupTestRouter(t)
		mockServices.HistoryService.On("ExportEntry", mock.Anything, entry.ID, "pdf").
			Return(nil, fmt.Errorf("%w: pdf", apperrors.ErrUnsupportedFormat))

		handler := handlers.NewHistoryHandler(mockServices.HistoryService)
		router.GET("/api/v1/history/:id/export", handler.Export)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/history/"+entry.ID+"/export?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "UNSUPPORTED_FORMAT", body["code"])
	})
}

func TestHistoryHandler_ExportExcel(t *testing.T) {
	t.Run("workbook download", func(t *testing.T) {
		router, mockServices := setupTestRouter(t)
		mockServices.HistoryService.On("ExportExcel", mock.Anything, "wav", mock.Anything).
			Run(func(args mock.Arguments) {
				w := args.Get(2).(io.Writer)
				entries := seedStore().Search("wav")
				require.NoError(t, export.HistoryToExcel(entries, w))
			}).
			Return(nil)

		handler := handlers.NewHistoryHandler(mockServices.HistoryService)
		router.GET("/api/v1/history/export.xlsx", handler.ExportExcel)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/history/export.xlsx?q=wav", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, export.ExcelMIMEType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), export.ExcelFileName)

		file, err := xlsx.OpenBinary(rec.Body.Bytes())
		require.NoError(t, err)
		// header row plus the two wav entries
		assert.Len(t, file.Sheets[0].Rows, 3)
	})

	t.Run("write failure answers with json", func(t *testing.T) {
		router, mockServices := setupTestRouter(t)
		mockServices.HistoryService.On("ExportExcel", mock.Anything, "", mock.Anything).
			Return(&apperrors.ExportError{FileName: export.ExcelFileName, Err: io.ErrShortWrite})

		handler := handlers.NewHistoryHandler(mockServices.HistoryService)
		router.GET("/api/v1/history/export.xlsx", handler.ExportExcel)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/history/export.xlsx", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("{")))
		assert.Equal(t, "EXPORT_FAILED", decodeBody(t, rec)["code"])
	})
}
