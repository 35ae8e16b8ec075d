package service

import (
	"context"
	"time"

	"github.com/sangkips/ownerdesk-api/internal/application/analytics"
	"github.com/sangkips/ownerdesk-api/internal/config"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/sangkips/ownerdesk-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	MsgDashboardFailed = "Error fetching dashboard data"
	MsgTrendsFailed    = "Error fetching trends data"
	MsgInsightsFailed  = "Error fetching insights"
	MsgChartFailed     = "Error fetching chart data"
)

// DashboardService provides the owner dashboard, trends, insights and charts
type DashboardService struct {
	aggregator    *analytics.Aggregator
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	business      config.BusinessConfig
	timeout       time.Duration
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	business config.BusinessConfig,
	analyticsCfg config.AnalyticsConfig,
) *DashboardService {
	return &DashboardService{
		aggregator:    analytics.NewAggregator(analyticsRepo),
		analyticsRepo: analyticsRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		business:      business,
		timeout:       analyticsCfg.QueryTimeout,
		now:           time.Now,
	}
}

// WithClock replaces the time source, used by tests
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Dashboard is the all-time overview of the business
type Dashboard struct {
	Totals           analytics.Snapshot
	PendingOrders    int64
	LowStockProducts int64
	RecentOrders     []entity.Order
	MonthlyRevenue   []repository.MonthlyRevenueResult
	BusinessName     string
	LastUpdated      time.Time
}

// NotificationCount is the number of things waiting for the owner's attention
func (d *Dashboard) NotificationCount() int64 {
	return d.PendingOrders + d.LowStockProducts
}

// GetDashboard returns all-time totals, pending and low stock counts,
// the newest orders and revenue per calendar month.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d := &Dashboard{
		BusinessName: s.business.Name,
		LastUpdated:  s.now(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		d.Totals, err = s.aggregator.Aggregate(ctx, repository.AllTime())
		return err
	})

	g.Go(func() error {
		var err error
		d.PendingOrders, err = s.analyticsRepo.CountOrdersByStatus(ctx, enum.OrderStatusPending)
		return err
	})

	g.Go(func() error {
		var err error
		d.LowStockProducts, err = s.analyticsRepo.CountLowStockProducts(ctx, s.business.LowStockThreshold)
		return err
	})

	g.Go(func() error {
		var err error
		d.RecentOrders, err = s.orderRepo.ListRecent(ctx, s.business.RecentOrdersLimit)
		return err
	})

	g.Go(func() error {
		var err error
		d.MonthlyRevenue, err = s.analyticsRepo.GetMonthlyRevenue(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.NewQueryError(MsgDashboardFailed, err)
	}
	return d, nil
}

// GetTrends compares the current period with the one before it
func (s *DashboardService) GetTrends(ctx context.Context, period enum.Period) (analytics.TrendSet, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	windows := analytics.ResolvePeriod(period, s.now())
	var current, previous analytics.Snapshot

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		current, err = s.aggregator.Aggregate(ctx, windows.Current)
		return err
	})

	g.Go(func() error {
		var err error
		previous, err = s.aggregator.Aggregate(ctx, windows.Previous)
		return err
	})

	if err := g.Wait(); err != nil {
		return analytics.TrendSet{}, apperror.NewQueryError(MsgTrendsFailed, err)
	}
	return analytics.Trends(current, previous), nil
}

// GetInsights ranks categories by sales and summarizes stock health
func (s *DashboardService) GetInsights(ctx context.Context, period enum.Period) (*analytics.Insights, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	windows := analytics.ResolvePeriod(period, now)
	in := analytics.InsightInput{Period: period}
	var trailing, current, previous decimal.Decimal

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		in.Items, err = s.orderRepo.ListItems(ctx, repository.AllTime())
		return err
	})

	g.Go(func() error {
		var err error
		in.Products, err = s.productRepo.ListWithCategory(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		in.Categories, err = s.productRepo.ListCategories(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		in.LowStock, err = s.analyticsRepo.CountLowStockProducts(ctx, s.business.LowStockThreshold)
		return err
	})

	g.Go(func() error {
		var err error
		in.OutOfStock, err = s.analyticsRepo.CountOutOfStockProducts(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		trailing, err = s.analyticsRepo.SumOrderRevenue(ctx, analytics.TrailingWindow(analytics.ForecastDays, now))
		return err
	})

	g.Go(func() error {
		var err error
		current, err = s.analyticsRepo.SumOrderRevenue(ctx, windows.Current)
		return err
	})

	g.Go(func() error {
		var err error
		previous, err = s.analyticsRepo.SumOrderRevenue(ctx, windows.Previous)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.NewQueryError(MsgInsightsFailed, err)
	}

	in.TrailingRevenue = trailing
	in.CurrentRevenue = current
	in.PreviousRevenue = previous

	insights := analytics.GenerateInsights(in)
	return &insights, nil
}

// GetChart builds the sales or order count series of a period
func (s *DashboardService) GetChart(ctx context.Context, chartType enum.ChartType, period enum.Period) ([]analytics.SeriesPoint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	w := analytics.ChartWindow(period, s.now())
	orders, err := s.orderRepo.ListInWindow(ctx, w)
	if err != nil {
		return nil, apperror.NewQueryError(MsgChartFailed, err)
	}
	return analytics.BuildSeries(orders, chartType, period, w), nil
}
