package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// MockAnalyticsRepository is a mock implementation of repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) ExecutiveSummary(ctx context.Context) (*entity.ExecutiveSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExecutiveSummary), args.Error(1)
}

func (m *MockAnalyticsRepository) FinancialAnalytics(ctx context.Context) (*entity.FinancialAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FinancialAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepository) ServiceSupport(ctx context.Context) (*entity.ServiceSupportMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceSupportMetrics), args.Error(1)
}

func (m *MockAnalyticsRepository) Raw(ctx context.Context, endpoint string) (map[string]any, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
