package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voxscribe/internal/api/middleware"
	"voxscribe/internal/api/v1/services"
)

// UsageHandler serves the account usage panel
type UsageHandler struct {
	service services.UsageService
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(service services.UsageService) *UsageHandler {
	return &UsageHandler{
		service: service,
	}
}

// Get handles GET /api/v1/usage
//
// @Summary Get account usage
// @Tags usage
// @Produce json
// @Success 200 {object} dto.UsageResponse "Usage figures"
// @Router /usage [get]
func (h *UsageHandler) Get(c *gin.Context) {
	response, err := h.service.GetUsage(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
