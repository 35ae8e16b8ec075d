package mocks

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// AnalyticsRepository is a testify mock of repository.AnalyticsRepository
type AnalyticsRepository struct {
	mock.Mock
}

// NewAnalyticsRepository creates the mock and asserts its expectations on cleanup
func NewAnalyticsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsRepository {
	m := &AnalyticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AnalyticsRepository) CountRecords(ctx context.Context, source enum.RecordSource, w repository.Window) (int64, error) {
	args := m.Called(ctx, source, w)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AnalyticsRepository) SumOrderRevenue(ctx context.Context, w repository.Window) (decimal.Decimal, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *AnalyticsRepository) CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AnalyticsRepository) CountLowStockProducts(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AnalyticsRepository) CountOutOfStockProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AnalyticsRepository) GetMonthlyRevenue(ctx context.Context) ([]repository.MonthlyRevenueResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]repository.MonthlyRevenueResult)
	return res, args.Error(1)
}

func (m *AnalyticsRepository) SalesBuckets(ctx context.Context, w repository.Window, groupBy enum.GroupBy) ([]repository.SalesBucketResult, error) {
	args := m.Called(ctx, w, groupBy)
	res, _ := args.Get(0).([]repository.SalesBucketResult)
	return res, args.Error(1)
}

func (m *AnalyticsRepository) SalesTotals(ctx context.Context, w repository.Window) (repository.SalesTotalsResult, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(repository.SalesTotalsResult), args.Error(1)
}
