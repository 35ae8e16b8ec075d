package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountRecords(ctx context.Context, source enum.RecordSource, w domainRepo.Window) (int64, error) {
	table := source.TableName()
	if table == "" {
		return 0, fmt.Errorf("unknown record source %d", source)
	}

	query := r.db.WithContext(ctx).
		Table(table).
		Scopes(WindowScope(source.DateColumn(), w))
	if source == enum.SourceUsers {
		query = query.Where("role = ?", enum.UserRoleUser)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func (r *analyticsRepository) SumOrderRevenue(ctx context.Context, w domainRepo.Window) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Scopes(WindowScope("created_at", w)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order revenue: %w", err)
	}
	return revenue, nil
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s orders: %w", status, err)
	}
	return count, nil
}

func (r *analyticsRepository) CountLowStockProducts(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("stock < ?", threshold).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return count, nil
}

func (r *analyticsRepository) CountOutOfStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("stock = 0").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count out of stock products: %w", err)
	}
	return count, nil
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) ([]domainRepo.MonthlyRevenueResult, error) {
	var results []domainRepo.MonthlyRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			CAST(EXTRACT(MONTH FROM created_at) AS INTEGER) as month,
			COALESCE(SUM(total_amount), 0) as revenue,
			COUNT(*) as count
		FROM orders
		GROUP BY 1
		ORDER BY 1 ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) SalesBuckets(ctx context.Context, w domainRepo.Window, groupBy enum.GroupBy) ([]domainRepo.SalesBucketResult, error) {
	var results []domainRepo.SalesBucketResult

	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', ?) AS bucket, "+
			"COUNT(*) AS total_orders, "+
			"COALESCE(SUM(total_amount), 0) AS total_revenue", groupBy.SQLFormat()).
		Scopes(WindowScope("created_at", w)).
		Group("bucket").
		Order("bucket ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("sales buckets by %s: %w", groupBy, err)
	}
	return results, nil
}

func (r *analyticsRepository) SalesTotals(ctx context.Context, w domainRepo.Window) (domainRepo.SalesTotalsResult, error) {
	var totals domainRepo.SalesTotalsResult

	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Select("COUNT(*) AS total_orders, " +
			"COALESCE(SUM(total_amount), 0) AS total_revenue, " +
			"MAX(total_amount) AS max_order_value, " +
			"MIN(total_amount) AS min_order_value").
		Scopes(WindowScope("created_at", w)).
		Scan(&totals).Error
	if err != nil {
		return domainRepo.SalesTotalsResult{}, fmt.Errorf("sales totals: %w", err)
	}
	return totals, nil
}
