package routes

import (
	"github.com/gin-gonic/gin"
	"voxscribe/internal/api/middleware"
	"voxscribe/internal/api/v1/handlers"
	"voxscribe/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Intake routes
	intakeHandler := handlers.NewIntakeHandler(container.IntakeService)
	intake := router.Group("/intake")
	{
		upload := intake.Group("")
		if container.MaxUploadSize > 0 {
			upload.Use(middleware.MaxBodySize(container.MaxUploadSize))
		}
		upload.POST("", intakeHandler.Submit)

		intake.GET("", intakeHandler.Status)
		intake.DELETE("", intakeHandler.Cancel)
		intake.GET("/result", intakeHandler.Result)
		intake.GET("/result/export", intakeHandler.ExportResult)
	}

	// History routes
	historyHandler := handlers.NewHistoryHandler(container.HistoryService)
	history := router.Group("/history")
	{
		history.GET("", historyHandler.List)
		history.GET("/export.xlsx", historyHandler.ExportExcel)
		history.GET("/:id", historyHandler.Get)
		history.DELETE("/:id", historyHandler.Delete)
		history.GET("/:id/export", historyHandler.Export)
	}

	// Usage routes
	if container.UsageService != nil {
		usageHandler := handlers.NewUsageHandler(container.UsageService)
		router.GET("/usage", usageHandler.Get)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	IntakeService  services.IntakeService
	HistoryService services.HistoryService
	UsageService   services.UsageService
	// MaxUploadSize caps upload bodies; zero disables the cap.
	MaxUploadSize int64
}
