package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/intake"
)

// MockServices contains all mock services for testing
type MockServices struct {
	IntakeService  *MockIntakeService
	HistoryService *MockHistoryService
	UsageService   *MockUsageService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		IntakeService:  NewMockIntakeService(t),
		HistoryService: NewMockHistoryService(t),
		UsageService:   NewMockUsageService(t),
	}
}

// AssertExpectations checks every mock
func (ms *MockServices) AssertExpectations(t *testing.T) {
	ms.IntakeService.AssertExpectations(t)
	ms.HistoryService.AssertExpectations(t)
	ms.UsageService.AssertExpectations(t)
}

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	mock.Mock
}

func NewMockIntakeService(t *testing.T) *MockIntakeService {
	m := &MockIntakeService{}
	m.Test(t)
	return m
}

func (m *MockIntakeService) Submit(ctx context.Context, file intake.FileHandle) (*dto.SubmitResponse, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitResponse), args.Error(1)
}

func (m *MockIntakeService) Status(ctx context.Context) dto.IntakeStatusResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.IntakeStatusResponse)
}

func (m *MockIntakeService) Cancel(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIntakeService) LatestResult(ctx context.Context) (*dto.ResultResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResultResponse), args.Error(1)
}

func (m *MockIntakeService) ExportResult(ctx context.Context, format string) (*export.Payload, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Payload), args.Error(1)
}

// MockHistoryService is a mock implementation of HistoryService
type MockHistoryService struct {
	mock.Mock
}

func NewMockHistoryService(t *testing.T) *MockHistoryService {
	m := &MockHistoryService{}
	m.Test(t)
	return m
}

func (m *MockHistoryService) ListHistory(ctx context.Context, query dto.ListHistoryQuery) (*dto.PaginatedHistoryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedHistoryResponse), args.Error(1)
}

func (m *MockHistoryService) ViewEntry(ctx context.Context, id string) (*dto.AckResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AckResponse), args.Error(1)
}

func (m *MockHistoryService) DeleteEntry(ctx context.Context, id string) (*dto.AckResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AckResponse), args.Error(1)
}

func (m *MockHistoryService) ExportEntry(ctx context.Context, id string, format string) (*export.Payload, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Payload), args.Error(1)
}

func (m *MockHistoryService) ExportExcel(ctx context.Context, query string, writer io.Writer) error {
	args := m.Called(ctx, query, writer)
	return args.Error(0)
}

// MockUsageService is a mock implementation of UsageService
type MockUsageService struct {
	mock.Mock
}

func NewMockUsageService(t *testing.T) *MockUsageService {
	m := &MockUsageService{}
	m.Test(t)
	return m
}

func (m *MockUsageService) GetUsage(ctx context.Context) (*dto.UsageResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UsageResponse), args.Error(1)
}
