package services

import (
	"context"

	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/app/dashboard"
)

// UsageServiceImpl implements UsageService over injected account figures
type UsageServiceImpl struct {
	account dashboard.Account
}

// NewUsageService creates a new usage service
func NewUsageService(account dashboard.Account) *UsageServiceImpl {
	return &UsageServiceImpl{account: account}
}

// GetUsage returns the account figures with derived percentages
func (s *UsageServiceImpl) GetUsage(ctx context.Context) (*dto.UsageResponse, error) {
	resp := dto.ToUsageResponse(dashboard.Compute(s.account))
	return &resp, nil
}
