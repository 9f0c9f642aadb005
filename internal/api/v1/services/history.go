package services

import (
	"context"
	"io"

	"go.uber.org/zap"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/metrics"
)

// HistoryServiceImpl implements HistoryService
type HistoryServiceImpl struct {
	store    *history.Store
	pageSize int
	metrics  *metrics.Collector
	logger   *zap.Logger
}

// NewHistoryService creates a new history service. pageSize is used when a
// request does not set one.
func NewHistoryService(store *history.Store, pageSize int, m *metrics.Collector, logger *zap.Logger) *HistoryServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageSize < 1 {
		pageSize = history.DefaultPageSize
	}
	return &HistoryServiceImpl{
		store:    store,
		pageSize: pageSize,
		metrics:  m,
		logger:   logger,
	}
}

// ListHistory searches and paginates the history
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, query dto.ListHistoryQuery) (*dto.PaginatedHistoryResponse, error) {
	size := query.PageSize
	if size < 1 {
		size = s.pageSize
	}
	page := history.Paginate(s.store.Search(query.Query), query.Page, size)
	resp := dto.ToPaginatedHistoryResponse(page, query.Query)
	return &resp, nil
}

// ViewEntry acknowledges opening an entry
func (s *HistoryServiceImpl) ViewEntry(ctx context.Context, id string) (*dto.AckResponse, error) {
	ack, err := s.store.View(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAckResponse(ack)
	return &resp, nil
}

// DeleteEntry acknowledges a delete request; the history is unchanged
func (s *HistoryServiceImpl) DeleteEntry(ctx context.Context, id string) (*dto.AckResponse, error) {
	ack, err := s.store.Delete(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAckResponse(ack)
	return &resp, nil
}

// ExportEntry packages an entry's transcript in format
func (s *HistoryServiceImpl) ExportEntry(ctx context.Context, id string, format string) (*export.Payload, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	entry, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	p := export.ForEntry(entry, f)
	s.metrics.ExportFinished(f.String(), nil)
	return &p, nil
}

// ExportExcel writes the entries matching query as a workbook
func (s *HistoryServiceImpl) ExportExcel(ctx context.Context, query string, writer io.Writer) error {
	entries := s.store.Search(query)
	err := export.HistoryToExcel(entries, writer)
	s.metrics.ExportFinished("xlsx", err)
	if err != nil {
		s.logger.Error("Excel export failed", zap.Int("entries", len(entries)), zap.Error(err))
		return err
	}
	return nil
}
