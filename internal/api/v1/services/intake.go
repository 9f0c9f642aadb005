package services

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"voxscribe/internal/api/v1/dto"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/metrics"
	"voxscribe/internal/app/model"
)

// IntakeServiceImpl implements IntakeService on top of a pipeline. It keeps
// the most recent result for the result and export endpoints.
type IntakeServiceImpl struct {
	pipeline *intake.Pipeline
	metrics  *metrics.Collector
	logger   *zap.Logger

	mu     sync.RWMutex
	latest *model.Result
}

// NewIntakeService creates a new intake service and registers it as a result
// consumer of pipeline
func NewIntakeService(pipeline *intake.Pipeline, m *metrics.Collector, logger *zap.Logger) *IntakeServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &IntakeServiceImpl{
		pipeline: pipeline,
		metrics:  m,
		logger:   logger,
	}
	pipeline.OnResult(s.store)
	return s
}

func (s *IntakeServiceImpl) store(r model.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &r
}

// Submit starts processing file. The submission outlives the request, so the
// request context is detached before it reaches the pipeline.
func (s *IntakeServiceImpl) Submit(ctx context.Context, file intake.FileHandle) (*dto.SubmitResponse, error) {
	sub, err := s.pipeline.Submit(context.WithoutCancel(ctx), file)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		SubmissionID: sub.ID,
		FileName:     file.Name,
		Size:         file.Size,
		MIMEType:     file.MIMEType,
		Status:       dto.ToIntakeStatusResponse(s.pipeline.Status()),
	}, nil
}

// Status returns the current pipeline state
func (s *IntakeServiceImpl) Status(ctx context.Context) dto.IntakeStatusResponse {
	return dto.ToIntakeStatusResponse(s.pipeline.Status())
}

// Cancel aborts the in-flight submission
func (s *IntakeServiceImpl) Cancel(ctx context.Context) error {
	return s.pipeline.Cancel()
}

func (s *IntakeServiceImpl) latestResult() (model.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return model.Result{}, apperrors.ErrNoResult
	}
	return *s.latest, nil
}

// LatestResult returns the last successful result
func (s *IntakeServiceImpl) LatestResult(ctx context.Context) (*dto.ResultResponse, error) {
	r, err := s.latestResult()
	if err != nil {
		return nil, err
	}
	resp := dto.ToResultResponse(r)
	return &resp, nil
}

// ExportResult packages the last result in format
func (s *IntakeServiceImpl) ExportResult(ctx context.Context, format string) (*export.Payload, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	r, err := s.latestResult()
	if err != nil {
		return nil, err
	}
	p := export.ForResult(r, f)
	s.metrics.ExportFinished(f.String(), nil)
	return &p, nil
}
