package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"voxscribe/internal/api/errors"
)

// ErrorHandler middleware recovers panics and answers with a structured error
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as an APIError. Domain errors are translated with
// errors.FromDomain; unmapped errors are attached to the context so the
// request log carries the cause.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromDomain(err)
	if apiErr.Kind == errors.KindInternal {
		_ = c.Error(err)
	}

	// copy so shared sentinels never carry a request ID
	resp := *apiErr
	resp.RequestID = c.GetString(RequestIDKey)
	c.Header("Content-Type", "application/json")
	c.AbortWithStatusJSON(resp.HTTPStatus(), &resp)
}
