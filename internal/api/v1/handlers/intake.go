package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"voxscribe/internal/api/errors"
	"voxscribe/internal/api/middleware"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/api/v1/services"
	"voxscribe/internal/app/intake"
)

// uploadField is the multipart field carrying the audio file
const uploadField = "file"

// IntakeHandler handles upload and processing endpoints
type IntakeHandler struct {
	service services.IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(service services.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		service: service,
	}
}

// Submit handles POST /api/v1/intake
//
// @Summary Upload an audio file for transcription
// @Description Accepts exactly one mp3, wav, m4a, ogg or flac file up to 100 MiB and starts processing it
// @Tags intake
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 202 {object} dto.SubmitResponse "Submission accepted"
// @Failure 409 {object} errors.APIError "Another file is being processed"
// @Failure 422 {object} errors.APIError "File rejected"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /intake [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			middleware.HandleError(c, errors.NewValidationError("File rejected",
				map[string]string{"size": "upload exceeds the size limit"}))
			return
		}
		middleware.HandleError(c, errors.NewValidationError("A file is required",
			map[string]string{uploadField: "is required"}))
		return
	}
	if form := c.Request.MultipartForm; form != nil && len(form.File[uploadField]) > 1 {
		middleware.HandleError(c, errors.NewValidationError("Exactly one file is accepted",
			map[string]string{uploadField: "only one file may be uploaded at a time"}))
		return
	}

	f, err := header.Open()
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	defer f.Close()

	file, err := intake.Sniff(header.Filename, header.Size, f, header.Header.Get("Content-Type"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Submit(c.Request.Context(), file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// Status handles GET /api/v1/intake
//
// @Summary Get the intake pipeline status
// @Tags intake
// @Produce json
// @Success 200 {object} dto.IntakeStatusResponse "Current state and progress"
// @Router /intake [get]
func (h *IntakeHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context()))
}

// Cancel handles DELETE /api/v1/intake
//
// @Summary Cancel the in-flight submission
// @Tags intake
// @Produce json
// @Success 200 {object} dto.IntakeStatusResponse "Cancellation requested"
// @Failure 409 {object} errors.APIError "Nothing is being processed"
// @Router /intake [delete]
func (h *IntakeHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context()); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context()))
}

// Result handles GET /api/v1/intake/result
//
// @Summary Get the latest transcription result
// @Tags intake
// @Produce json
// @Success 200 {object} dto.ResultResponse "Latest result"
// @Failure 404 {object} errors.APIError "No result yet"
// @Router /intake/result [get]
func (h *IntakeHandler) Result(c *gin.Context) {
	response, err := h.service.LatestResult(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ExportResult handles GET /api/v1/intake/result/export
//
// @Summary Download the latest result as a text file
// @Tags intake
// @Produce plain
// @Param format query string false "Export format" default(txt) Enums(txt,srt,vtt)
// @Success 200 {file} file "Transcript"
// @Failure 400 {object} errors.APIError "Unsupported format"
// @Failure 404 {object} errors.APIError "No result yet"
// @Router /intake/result/export [get]
func (h *IntakeHandler) ExportResult(c *gin.Context) {
	var query dto.ExportQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	payload, err := h.service.ExportResult(c.Request.Context(), query.Format)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	sendPayload(c, payload)
}
