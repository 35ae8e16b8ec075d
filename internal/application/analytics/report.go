package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// NullCategoryKey is the summary bucket of products without a category
const NullCategoryKey = "null"

const dateOnlyLayout = "2006-01-02"

// ParseReportDate accepts YYYY-MM-DD or RFC 3339. Blank or unparsable
// input yields nil so the bound is ignored. A date-only end bound is
// moved to the last instant of that day to keep the whole day inclusive.
func ParseReportDate(s string, endOfDay bool) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

// SalesWindow is the closed [start, end] range of a sales report
func SalesWindow(start, end *time.Time) repository.Window {
	return repository.Window{Start: start, End: end, IncludeEnd: true}
}

// SalesBucket is one time bucket of the sales report
type SalesBucket struct {
	Key               string
	TotalOrders       int64
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// SalesSummary covers every order in the report. Max and Min are nil when
// there are no orders.
type SalesSummary struct {
	TotalOrders       int64
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	MaxOrderValue     *decimal.Decimal
	MinOrderValue     *decimal.Decimal
}

type SalesReport struct {
	GroupBy enum.GroupBy
	Buckets []SalesBucket
	Summary SalesSummary
}

func average(total decimal.Decimal, n int64) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(n))
}

// BuildSalesReport turns the grouped bucket rows and the report totals into
// a sales report, deriving the average order values.
func BuildSalesReport(rows []repository.SalesBucketResult, totals repository.SalesTotalsResult, groupBy enum.GroupBy) SalesReport {
	buckets := make([]SalesBucket, 0, len(rows))
	for _, r := range rows {
		buckets = append(buckets, SalesBucket{
			Key:               r.Bucket,
			TotalOrders:       r.TotalOrders,
			TotalRevenue:      r.TotalRevenue,
			AverageOrderValue: average(r.TotalRevenue, r.TotalOrders),
		})
	}
	sort.SliceStable(buckets, func(a, b int) bool { return buckets[a].Key < buckets[b].Key })

	summary := SalesSummary{
		TotalOrders:       totals.TotalOrders,
		TotalRevenue:      totals.TotalRevenue,
		AverageOrderValue: average(totals.TotalRevenue, totals.TotalOrders),
	}
	if totals.TotalOrders > 0 && totals.MaxOrderValue.Valid {
		high := totals.MaxOrderValue.Decimal
		summary.MaxOrderValue = &high
	}
	if totals.TotalOrders > 0 && totals.MinOrderValue.Valid {
		low := totals.MinOrderValue.Decimal
		summary.MinOrderValue = &low
	}

	return SalesReport{GroupBy: groupBy, Buckets: buckets, Summary: summary}
}

// InventoryLine is one product row of the inventory report
type InventoryLine struct {
	ID       uuid.UUID
	Name     string
	SKU      string
	Price    decimal.Decimal
	Stock    int
	Category *string
	Value    decimal.Decimal
}

type CategoryTotals struct {
	Count int64
	Value decimal.Decimal
}

type InventorySummary struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	LowStock      int64
	OutOfStock    int64
	Categories    map[string]CategoryTotals
}

type InventoryReport struct {
	Lines   []InventoryLine
	Summary InventorySummary
}

// BuildInventoryReport values every product and rolls the values up per
// category in a single pass. Lines are ordered by stock, scarcest first.
func BuildInventoryReport(products []entity.Product, lowStockThreshold int) InventoryReport {
	lines := make([]InventoryLine, 0, len(products))
	summary := InventorySummary{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		Categories:    make(map[string]CategoryTotals),
	}

	for i := range products {
		p := &products[i]
		line := InventoryLine{
			ID:    p.ID,
			Name:  p.Name,
			SKU:   p.SKU,
			Price: p.Price,
			Stock: p.Stock,
			Value: p.StockValue(),
		}
		key := NullCategoryKey
		if p.Category != nil {
			name := p.Category.Name
			line.Category = &name
			key = name
		}
		lines = append(lines, line)

		summary.TotalValue = summary.TotalValue.Add(line.Value)
		if p.IsLowStock(lowStockThreshold) {
			summary.LowStock++
		}
		if p.IsOutOfStock() {
			summary.OutOfStock++
		}

		totals, ok := summary.Categories[key]
		if !ok {
			totals.Value = decimal.Zero
		}
		totals.Count++
		totals.Value = totals.Value.Add(line.Value)
		summary.Categories[key] = totals
	}

	sort.SliceStable(lines, func(a, b int) bool {
		if lines[a].Stock != lines[b].Stock {
			return lines[a].Stock < lines[b].Stock
		}
		return lines[a].Name < lines[b].Name
	})

	return InventoryReport{Lines: lines, Summary: summary}
}
