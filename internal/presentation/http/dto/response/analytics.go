package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/application/analytics"
	"github.com/sangkips/ownerdesk-api/internal/application/service"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func toFloat64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func toFloat64Ptr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// PeriodOption is one entry of the dashboard period picker
type PeriodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RecentOrder is the dashboard projection of an order
type RecentOrder struct {
	ID          uuid.UUID        `json:"id"`
	OrderNumber string           `json:"orderNumber"`
	Customer    string           `json:"customer"`
	Amount      float64          `json:"amount"`
	Status      enum.OrderStatus `json:"status"`
	Date        time.Time        `json:"date"`
}

type MonthlyRevenue struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

// DashboardResponse represents the owner dashboard payload
type DashboardResponse struct {
	TotalProducts     int64            `json:"totalProducts"`
	TotalSuppliers    int64            `json:"totalSuppliers"`
	TotalOrders       int64            `json:"totalOrders"`
	TotalExpenses     int64            `json:"totalExpenses"`
	TotalTransactions int64            `json:"totalTransactions"`
	TotalUsers        int64            `json:"totalUsers"`
	TotalRevenue      float64          `json:"totalRevenue"`
	PendingOrders     int64            `json:"pendingOrders"`
	LowStockProducts  int64            `json:"lowStockProducts"`
	BusinessName      string           `json:"businessName"`
	LastUpdated       time.Time        `json:"lastUpdated"`
	NotificationCount int64            `json:"notificationCount"`
	AvailablePeriods  []PeriodOption   `json:"availablePeriods"`
	RecentOrders      []RecentOrder    `json:"recentOrders"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthlyRevenue"`
}

func NewRecentOrder(o *entity.Order) RecentOrder {
	return RecentOrder{
		ID:          o.ID,
		OrderNumber: o.DisplayNumber(),
		Customer:    o.DisplayCustomer(),
		Amount:      toFloat64(o.TotalAmount),
		Status:      o.Status,
		Date:        o.CreatedAt,
	}
}

// NewDashboardResponse converts a dashboard into its JSON shape
func NewDashboardResponse(d *service.Dashboard) DashboardResponse {
	periods := enum.AllPeriods()
	options := make([]PeriodOption, 0, len(periods))
	for _, p := range periods {
		options = append(options, PeriodOption{Value: p.String(), Label: p.Label()})
	}

	recent := make([]RecentOrder, 0, len(d.RecentOrders))
	for i := range d.RecentOrders {
		recent = append(recent, NewRecentOrder(&d.RecentOrders[i]))
	}

	monthly := make([]MonthlyRevenue, 0, len(d.MonthlyRevenue))
	for _, m := range d.MonthlyRevenue {
		monthly = append(monthly, MonthlyRevenue{Month: m.Month, Revenue: toFloat64(m.Revenue), Count: m.Count})
	}

	return DashboardResponse{
		TotalProducts:     d.Totals.Products,
		TotalSuppliers:    d.Totals.Suppliers,
		TotalOrders:       d.Totals.Orders,
		TotalExpenses:     d.Totals.Expenses,
		TotalTransactions: d.Totals.Transactions,
		TotalUsers:        d.Totals.Users,
		TotalRevenue:      toFloat64(d.Totals.Revenue),
		PendingOrders:     d.PendingOrders,
		LowStockProducts:  d.LowStockProducts,
		BusinessName:      d.BusinessName,
		LastUpdated:       d.LastUpdated,
		NotificationCount: d.NotificationCount(),
		AvailablePeriods:  options,
		RecentOrders:      recent,
		MonthlyRevenue:    monthly,
	}
}

type RevenueInsightResponse struct {
	Trend      float64 `json:"trend"`
	Comparison string  `json:"comparison"`
	Forecast   float64 `json:"forecast"`
}

type TopCategoryResponse struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage int64   `json:"percentage"`
	Quantity   int64   `json:"quantity"`
}

type InventoryInsightResponse struct {
	LowStock   int64                     `json:"lowStock"`
	OutOfStock int64                     `json:"outOfStock"`
	Health     analytics.InventoryHealth `json:"health"`
	TotalValue float64                   `json:"totalValue"`
}

// InsightsResponse represents the insights payload
type InsightsResponse struct {
	Revenue        RevenueInsightResponse   `json:"revenue"`
	TopCategory    TopCategoryResponse      `json:"topCategory"`
	Inventory      InventoryInsightResponse `json:"inventory"`
	Recommendation string                   `json:"recommendation"`
}

func NewInsightsResponse(in *analytics.Insights) InsightsResponse {
	return InsightsResponse{
		Revenue: RevenueInsightResponse{
			Trend:      toFloat64(in.Revenue.Trend),
			Comparison: in.Revenue.Comparison,
			Forecast:   toFloat64(in.Revenue.Forecast),
		},
		TopCategory: TopCategoryResponse{
			Name:       in.TopCategory.Name,
			Revenue:    toFloat64(in.TopCategory.Revenue),
			Percentage: in.TopCategory.Percentage,
			Quantity:   in.TopCategory.Quantity,
		},
		Inventory: InventoryInsightResponse{
			LowStock:   in.Inventory.LowStock,
			OutOfStock: in.Inventory.OutOfStock,
			Health:     in.Inventory.Health,
			TotalValue: toFloat64(in.Inventory.TotalValue),
		},
		Recommendation: in.Recommendation,
	}
}

// ChartPoint is one {name, value} pair of a chart series
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func NewChartPoints(points []analytics.SeriesPoint) []ChartPoint {
	out := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPoint{Name: p.Name, Value: toFloat64(p.Value)})
	}
	return out
}

type SalesBucketResponse struct {
	ID                string  `json:"_id"`
	TotalOrders       int64   `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// SalesSummaryResponse leaves max and min null when there were no orders
type SalesSummaryResponse struct {
	TotalOrders       int64    `json:"totalOrders"`
	TotalRevenue      float64  `json:"totalRevenue"`
	AverageOrderValue float64  `json:"averageOrderValue"`
	MaxOrderValue     *float64 `json:"maxOrderValue"`
	MinOrderValue     *float64 `json:"minOrderValue"`
}

func NewSalesReportResponse(r *analytics.SalesReport) ([]SalesBucketResponse, SalesSummaryResponse) {
	buckets := make([]SalesBucketResponse, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		buckets = append(buckets, SalesBucketResponse{
			ID:                b.Key,
			TotalOrders:       b.TotalOrders,
			TotalRevenue:      toFloat64(b.TotalRevenue),
			AverageOrderValue: toFloat64(b.AverageOrderValue),
		})
	}
	summary := SalesSummaryResponse{
		TotalOrders:       r.Summary.TotalOrders,
		TotalRevenue:      toFloat64(r.Summary.TotalRevenue),
		AverageOrderValue: toFloat64(r.Summary.AverageOrderValue),
		MaxOrderValue:     toFloat64Ptr(r.Summary.MaxOrderValue),
		MinOrderValue:     toFloat64Ptr(r.Summary.MinOrderValue),
	}
	return buckets, summary
}

type InventoryProductResponse struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	SKU      string    `json:"sku"`
	Price    float64   `json:"price"`
	Stock    int       `json:"stock"`
	Category *string   `json:"category"`
	Value    float64   `json:"value"`
}

type CategoryTotalsResponse struct {
	Count int64   `json:"count"`
	Value float64 `json:"value"`
}

type InventorySummaryResponse struct {
	TotalProducts int                               `json:"totalProducts"`
	TotalValue    float64                           `json:"totalValue"`
	LowStock      int64                             `json:"lowStock"`
	OutOfStock    int64                             `json:"outOfStock"`
	Categories    map[string]CategoryTotalsResponse `json:"categories"`
}

func NewInventoryReportResponse(r *analytics.InventoryReport) ([]InventoryProductResponse, InventorySummaryResponse) {
	products := make([]InventoryProductResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		products = append(products, InventoryProductResponse{
			ID:       l.ID,
			Name:     l.Name,
			SKU:      l.SKU,
			Price:    toFloat64(l.Price),
			Stock:    l.Stock,
			Category: l.Category,
			Value:    toFloat64(l.Value),
		})
	}

	categories := make(map[string]CategoryTotalsResponse, len(r.Summary.Categories))
	for name, c := range r.Summary.Categories {
		categories[name] = CategoryTotalsResponse{Count: c.Count, Value: toFloat64(c.Value)}
	}

	return products, InventorySummaryResponse{
		TotalProducts: r.Summary.TotalProducts,
		TotalValue:    toFloat64(r.Summary.TotalValue),
		LowStock:      r.Summary.LowStock,
		OutOfStock:    r.Summary.OutOfStock,
		Categories:    categories,
	}
}
