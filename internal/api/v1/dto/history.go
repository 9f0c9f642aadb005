package dto

import (
	"time"

	"github.com/samber/lo"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/model"
)

// ListHistoryQuery represents query parameters for listing history
type ListHistoryQuery struct {
	Query    string `form:"q"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=100"`
}

// ExportQuery selects the export format
type ExportQuery struct {
	Format string `form:"format,default=txt"`
}

// HistoryEntryResponse represents a history entry in API responses
type HistoryEntryResponse struct {
	ID                string    `json:"id"`
	SourceName        string    `json:"source_name"`
	Text              string    `json:"text"`
	Preview           string    `json:"preview"`
	Confidence        float64   `json:"confidence"`
	ConfidencePercent int       `json:"confidence_percent"`
	Duration          int       `json:"duration"`
	DurationLabel     string    `json:"duration_label"`
	CreatedAt         time.Time `json:"created_at"`
	CreatedAtLabel    string    `json:"created_at_label"`
	Status            string    `json:"status"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	Summary    string `json:"summary"`
}

// PaginatedHistoryResponse represents one page of history
type PaginatedHistoryResponse struct {
	Entries    []HistoryEntryResponse `json:"entries"`
	Pagination PaginationResponse     `json:"pagination"`
	Query      string                 `json:"query,omitempty"`
}

// AckResponse is a transient acknowledgment of an entry action
type AckResponse struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Entry       HistoryEntryResponse `json:"entry"`
}

// ToHistoryEntryResponse converts a model to response DTO
func ToHistoryEntryResponse(e model.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:                e.ID,
		SourceName:        e.SourceName,
		Text:              e.Text,
		Preview:           history.Preview(e.Text),
		Confidence:        e.Confidence,
		ConfidencePercent: history.ConfidencePercent(e.Confidence),
		Duration:          e.Duration,
		DurationLabel:     history.FormatDuration(e.Duration),
		CreatedAt:         e.CreatedAt,
		CreatedAtLabel:    history.FormatDate(e.CreatedAt),
		Status:            string(e.Status),
	}
}

// ToPaginatedHistoryResponse converts a page
func ToPaginatedHistoryResponse(p history.Page, query string) PaginatedHistoryResponse {
	return PaginatedHistoryResponse{
		Entries: lo.Map(p.Items, func(e model.HistoryEntry, _ int) HistoryEntryResponse {
			return ToHistoryEntryResponse(e)
		}),
		Pagination: PaginationResponse{
			Page:       p.Number,
			Limit:      p.Size,
			Total:      p.Total,
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext(),
			HasPrev:    p.HasPrev(),
			Summary:    p.Summary(),
		},
		Query: query,
	}
}

// ToAckResponse converts an acknowledgment
func ToAckResponse(a history.Ack) AckResponse {
	return AckResponse{
		Title:       a.Title,
		Description: a.Description,
		Entry:       ToHistoryEntryResponse(a.Entry),
	}
}
