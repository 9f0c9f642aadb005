package services

import (
	"context"
	"io"

	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/intake"
)

// IntakeService defines the interface for upload and processing operations
type IntakeService interface {
	Submit(ctx context.Context, file intake.FileHandle) (*dto.SubmitResponse, error)
	Status(ctx context.Context) dto.IntakeStatusResponse
	Cancel(ctx context.Context) error
	LatestResult(ctx context.Context) (*dto.ResultResponse, error)
	ExportResult(ctx context.Context, format string) (*export.Payload, error)
}

// HistoryService defines the interface for history operations
type HistoryService interface {
	ListHistory(ctx context.Context, query dto.ListHistoryQuery) (*dto.PaginatedHistoryResponse, error)
	ViewEntry(ctx context.Context, id string) (*dto.AckResponse, error)
	DeleteEntry(ctx context.Context, id string) (*dto.AckResponse, error)
	ExportEntry(ctx context.Context, id string, format string) (*export.Payload, error)
	ExportExcel(ctx context.Context, query string, writer io.Writer) error
}

// UsageService defines the interface for the account usage panel
type UsageService interface {
	GetUsage(ctx context.Context) (*dto.UsageResponse, error)
}
