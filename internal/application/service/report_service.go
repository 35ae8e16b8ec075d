package service

import (
	"context"
	"time"

	"github.com/sangkips/ownerdesk-api/internal/application/analytics"
	"github.com/sangkips/ownerdesk-api/internal/config"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/sangkips/ownerdesk-api/pkg/apperror"
	"golang.org/x/sync/errgroup"
)

const (
	MsgSalesReportFailed     = "Error generating sales report"
	MsgInventoryReportFailed = "Error generating inventory report"
)

// ReportService generates the sales and inventory reports
type ReportService struct {
	analyticsRepo     repository.AnalyticsRepository
	productRepo       repository.ProductRepository
	lowStockThreshold int
	timeout           time.Duration
}

// NewReportService creates a new report service
func NewReportService(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	business config.BusinessConfig,
	analyticsCfg config.AnalyticsConfig,
) *ReportService {
	return &ReportService{
		analyticsRepo:     analyticsRepo,
		productRepo:       productRepo,
		lowStockThreshold: business.LowStockThreshold,
		timeout:           analyticsCfg.QueryTimeout,
	}
}

// SalesReportInput represents the sales report filters. Nil bounds are open.
type SalesReportInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	GroupBy   enum.GroupBy
}

func (s *ReportService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// SalesReport buckets orders in [StartDate, EndDate] by GroupBy. Buckets
// and totals are aggregated by the database.
func (s *ReportService) SalesReport(ctx context.Context, input SalesReportInput) (*analytics.SalesReport, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	w := analytics.SalesWindow(input.StartDate, input.EndDate)
	var (
		rows   []repository.SalesBucketResult
		totals repository.SalesTotalsResult
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows, err = s.analyticsRepo.SalesBuckets(ctx, w, input.GroupBy)
		return err
	})

	g.Go(func() error {
		var err error
		totals, err = s.analyticsRepo.SalesTotals(ctx, w)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.NewQueryError(MsgSalesReportFailed, err)
	}

	report := analytics.BuildSalesReport(rows, totals, input.GroupBy)
	return &report, nil
}

// InventoryReport values every product and groups the value by category
func (s *ReportService) InventoryReport(ctx context.Context) (*analytics.InventoryReport, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	products, err := s.productRepo.ListWithCategory(ctx)
	if err != nil {
		return nil, apperror.NewQueryError(MsgInventoryReportFailed, err)
	}

	report := analytics.BuildInventoryReport(products, s.lowStockThreshold)
	return &report, nil
}
