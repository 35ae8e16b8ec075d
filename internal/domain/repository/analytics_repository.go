package repository

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// MonthlyRevenueResult is revenue and order count for one calendar month
type MonthlyRevenueResult struct {
	Month   int
	Revenue decimal.Decimal
	Count   int64
}

// SalesBucketResult is the order count and revenue of one sales report bucket
type SalesBucketResult struct {
	Bucket       string
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// SalesTotalsResult summarizes every order of a sales report. Max and Min
// are null when no order matched.
type SalesTotalsResult struct {
	TotalOrders   int64
	TotalRevenue  decimal.Decimal
	MaxOrderValue decimal.NullDecimal
	MinOrderValue decimal.NullDecimal
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// CountRecords counts rows of source whose date column falls inside w
	CountRecords(ctx context.Context, source enum.RecordSource, w Window) (int64, error)

	// SumOrderRevenue returns the total order amount inside w, zero when empty
	SumOrderRevenue(ctx context.Context, w Window) (decimal.Decimal, error)

	// CountOrdersByStatus counts all orders with the given status
	CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)

	// CountLowStockProducts counts products with stock strictly below threshold
	CountLowStockProducts(ctx context.Context, threshold int) (int64, error)

	// CountOutOfStockProducts counts products with no stock left
	CountOutOfStockProducts(ctx context.Context) (int64, error)

	// GetMonthlyRevenue groups all orders by calendar month, ascending
	GetMonthlyRevenue(ctx context.Context) ([]MonthlyRevenueResult, error)

	// SalesBuckets groups orders inside w by groupBy in UTC, ascending by bucket
	SalesBuckets(ctx context.Context, w Window, groupBy enum.GroupBy) ([]SalesBucketResult, error)

	// SalesTotals aggregates every order inside w
	SalesTotals(ctx context.Context, w Window) (SalesTotalsResult, error)
}
