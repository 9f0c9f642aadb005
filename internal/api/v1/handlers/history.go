package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voxscribe/internal/api/middleware"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/api/v1/services"
	"voxscribe/internal/app/export"
)

// HistoryHandler handles history endpoints
type HistoryHandler struct {
	service services.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		service: service,
	}
}

// List handles GET /api/v1/history
//
// @Summary Search and page through past transcriptions
// @Description Case-insensitive substring search over file names and transcript text. Pages beyond the last are clamped.
// @Tags history
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param page_size query int false "Items per page" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.PaginatedHistoryResponse "One page of history"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Header 200 {string} X-Total-Count "Number of matching entries"
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	var query dto.ListHistoryQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListHistory(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/history/:id
//
// @Summary Open a history entry
// @Tags history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.AckResponse "Entry with acknowledgment"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	response, err := h.service.ViewEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/history/:id
//
// @Summary Acknowledge a delete request
// @Description Returns a confirmation message. The history itself is read-only and is not changed.
// @Tags history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.AckResponse "Acknowledgment"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	response, err := h.service.DeleteEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Export handles GET /api/v1/history/:id/export
//
// @Summary Download an entry's transcript
// @Tags history
// @Produce plain
// @Param id path string true "Entry ID"
// @Param format query string false "Export format" default(txt) Enums(txt,srt,vtt)
// @Success 200 {file} file "Transcript"
// @Failure 400 {object} errors.APIError "Unsupported format"
// @Failure 404 {object} errors.APIError "Entry not found"
// @Router /history/{id}/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	payload, err := h.service.ExportEntry(c.Request.Context(), c.Param("id"), query.Format)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	sendPayload(c, payload)
}

// ExportExcel handles GET /api/v1/history/export.xlsx
//
// @Summary Download matching history as an Excel workbook
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Search text"
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /history/export.xlsx [get]
func (h *HistoryHandler) ExportExcel(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportExcel(c.Request.Context(), c.Query("q"), &buf); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ExcelFileName))
	c.Data(http.StatusOK, export.ExcelMIMEType, buf.Bytes())
}
