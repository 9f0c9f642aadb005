package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for multipart boundaries and headers so a file
// of exactly the configured ceiling still fits.
const multipartOverhead = 1 << 20

// MaxBodySize caps request bodies at limit plus multipart overhead
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
		}
		c.Next()
	}
}
