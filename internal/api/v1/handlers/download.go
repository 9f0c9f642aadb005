package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"voxscribe/internal/app/export"
)

// sendPayload writes p as a file download
func sendPayload(c *gin.Context, p *export.Payload) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.FileName))
	c.Data(http.StatusOK, p.MIMEType+"; charset=utf-8", p.Data)
}
