package middleware

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"voxscribe/internal/api/errors"
	apperrors "voxscribe/internal/app/errors"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

		id := rec.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{"wildcard", nil, "GET", "http://a.example", http.StatusOK, "*"},
		{"listed origin", []string{"http://a.example"}, "GET", "http://a.example", http.StatusOK, "http://a.example"},
		{"unlisted origin", []string{"http://a.example"}, "GET", "http://b.example", http.StatusOK, ""},
		{"preflight", nil, "OPTIONS", "http://a.example", http.StatusNoContent, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(CORS(DefaultCORSConfig(tt.origins...)))
			router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
			assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   errors.ErrorKind
		expectedCode   string
	}{
		{"validation", apperrors.NewValidationError("size", "too large"), http.StatusUnprocessableEntity, errors.KindValidation, "INVALID_FILE"},
		{"busy", apperrors.ErrBusy, http.StatusConflict, errors.KindConflict, "PIPELINE_BUSY"},
		{"api error", errors.NewNotFoundError("thing"), http.StatusNotFound, errors.KindNotFound, ""},
		{"unmapped", stderrors.New("boom"), http.StatusInternalServerError, errors.KindInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(RequestID())
			router.GET("/x", func(c *gin.Context) { HandleError(c, tt.err) })

			req := httptest.NewRequest("GET", "/x", nil)
			req.Header.Set("X-Request-ID", "req-1")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body errors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedKind, body.Kind)
			assert.Equal(t, "req-1", body.RequestID)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body.Code)
			}
			if tt.expectedKind == errors.KindInternal {
				assert.Equal(t, "Internal server error", body.Message)
			}
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	router := newRouter(RequestID(), ErrorHandler(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic(stderrors.New("exploded")) })
	router.GET("/api-panic", func(c *gin.Context) { panic(errors.NewConflictError("taken")) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Internal server error").Len())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api-panic", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStructuredLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(RequestID(), StructuredLogging(zap.New(core)))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) { HandleError(c, stderrors.New("db down")) })

	for _, path := range []string{"/health", "/ok", "/missing", "/broken"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "/broken", entries[2].ContextMap()["path"])
	assert.Contains(t, entries[2].ContextMap()["error"], "db down")
}

type pageQuery struct {
	Page int `form:"page,default=1" binding:"min=1"`
}

func TestValidateQuery(t *testing.T) {
	router := newRouter()
	router.GET("/q", func(c *gin.Context) {
		var q pageQuery
		if err := ValidateQuery(c, &q); err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, q)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/q?page=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be at least 1")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/q?page=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid query parameters")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/q", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Page":1}`, rec.Body.String())
}

func TestMaxBodySize(t *testing.T) {
	router := newRouter(MaxBodySize(10))
	router.POST("/upload", func(c *gin.Context) {
		_, err := io.Copy(io.Discard, c.Request.Body)
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := strings.NewReader(strings.Repeat("a", 1<<20))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/upload", small))
	assert.Equal(t, http.StatusOK, rec.Code)

	big := strings.NewReader(strings.Repeat("a", (1<<20)+11))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/upload", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

type listQuery struct {
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=100"`
	Sort     string `binding:"omitempty,oneof=asc desc"`
}

func TestValidateQueryDetailsUseParameterNames(t *testing.T) {
	router := newRouter()
	router.GET("/list", func(c *gin.Context) {
		var q listQuery
		if err := ValidateQuery(c, &q); err != nil {
			HandleError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/list?page_size=500&Sort=up", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"page_size": "must be at most 100",
		"sort":      "must be one of asc desc",
	}, body.Details)
}
