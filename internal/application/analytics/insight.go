package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

const (
	// UncategorizedName buckets sales of products without a known category
	UncategorizedName = "Uncategorized"
	// NoTopCategoryName is reported when nothing has been sold yet
	NoTopCategoryName = "None"

	criticalLowStock = 10
	warningLowStock  = 5
)

// forecastGrowth is a flat placeholder multiplier, not a fitted model
var forecastGrowth = decimal.NewFromFloat(1.15)

// InventoryHealth is the three tier stock status label
type InventoryHealth string

const (
	HealthGood     InventoryHealth = "Good"
	HealthWarning  InventoryHealth = "Warning"
	HealthCritical InventoryHealth = "Critical"
)

const (
	RecommendUrgentReorder = "⚠️ Urgent: Multiple products running low on stock. Consider bulk reorder immediately."
	RecommendRaiseStock    = "📈 Demand increasing: Increase inventory for trending products to meet demand."
	RecommendRestock       = "🔄 Restock needed: Some products are out of stock. Review your supply chain."
	RecommendHealthy       = "✅ Inventory levels are healthy. Focus on marketing top performers."
)

// LineItem is one sold product line as it moves through the join steps
type LineItem struct {
	entity.OrderItem
	Product  *entity.Product
	Category string
}

// CategoryGroup is the sales total of one category
type CategoryGroup struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// CategoryPerformance is the winning category of the insight ranking
type CategoryPerformance struct {
	Name       string
	Revenue    decimal.Decimal
	Percentage int64
	Quantity   int64
}

// ExpandLineItems flattens order items into one line per item
func ExpandLineItems(items []entity.OrderItem) []LineItem {
	lines := make([]LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, LineItem{OrderItem: it})
	}
	return lines
}

// JoinProducts attaches the product to each line. Lines whose product no
// longer exists are dropped.
func JoinProducts(lines []LineItem, products []entity.Product) []LineItem {
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	out := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			continue
		}
		l.Product = p
		out = append(out, l)
	}
	return out
}

// JoinCategories resolves the category name of each line's product
func JoinCategories(lines []LineItem, categories []entity.Category) []LineItem {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]LineItem, len(lines))
	for i, l := range lines {
		l.Category = UncategorizedName
		if l.Product != nil && l.Product.CategoryID != nil {
			if name, ok := names[*l.Product.CategoryID]; ok {
				l.Category = name
			}
		}
		out[i] = l
	}
	return out
}

// GroupByCategory sums quantity and revenue per category, ordered by name
func GroupByCategory(lines []LineItem) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup

	for _, l := range lines {
		i, ok := index[l.Category]
		if !ok {
			i = len(groups)
			index[l.Category] = i
			groups = append(groups, CategoryGroup{Name: l.Category, Revenue: decimal.Zero})
		}
		groups[i].Quantity += int64(l.Quantity)
		groups[i].Revenue = groups[i].Revenue.Add(l.LineTotal())
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Name < groups[b].Name
	})
	return groups
}

// TopCategory picks the highest revenue group; equal revenue goes to the
// lexically smaller name. Percentage is revenue over totalInventoryValue,
// with 1 standing in for a zero denominator.
func TopCategory(groups []CategoryGroup, totalInventoryValue decimal.Decimal) CategoryPerformance {
	if len(groups) == 0 {
		return CategoryPerformance{Name: NoTopCategoryName, Revenue: decimal.Zero}
	}

	best := groups[0]
	for _, g := range groups[1:] {
		cmp := g.Revenue.Cmp(best.Revenue)
		if cmp > 0 || (cmp == 0 && g.Name < best.Name) {
			best = g
		}
	}

	denominator := totalInventoryValue
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}

	return CategoryPerformance{
		Name:       best.Name,
		Revenue:    best.Revenue,
		Percentage: best.Revenue.Div(denominator).Mul(hundred).Round(0).IntPart(),
		Quantity:   best.Quantity,
	}
}

// InventoryValue is the sum of price times stock over all products
func InventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].StockValue())
	}
	return total
}

// ClassifyHealth maps a low stock count to a health tier. Critical is
// checked first.
func ClassifyHealth(lowStock int64) InventoryHealth {
	switch {
	case lowStock > criticalLowStock:
		return HealthCritical
	case lowStock > warningLowStock:
		return HealthWarning
	default:
		return HealthGood
	}
}

// Recommend returns the first matching stock recommendation
func Recommend(lowStock, outOfStock int64) string {
	switch {
	case lowStock > criticalLowStock:
		return RecommendUrgentReorder
	case lowStock > warningLowStock:
		return RecommendRaiseStock
	case outOfStock > 0:
		return RecommendRestock
	default:
		return RecommendHealthy
	}
}

// Forecast projects next period revenue from the trailing window
func Forecast(trailingRevenue decimal.Decimal) decimal.Decimal {
	return trailingRevenue.Mul(forecastGrowth)
}

// InsightInput is everything GenerateInsights reads
type InsightInput struct {
	Period          enum.Period
	Items           []entity.OrderItem
	Products        []entity.Product
	Categories      []entity.Category
	LowStock        int64
	OutOfStock      int64
	TrailingRevenue decimal.Decimal
	CurrentRevenue  decimal.Decimal
	PreviousRevenue decimal.Decimal
}

type RevenueInsight struct {
	Trend      decimal.Decimal
	Comparison string
	Forecast   decimal.Decimal
}

type InventoryInsight struct {
	LowStock   int64
	OutOfStock int64
	Health     InventoryHealth
	TotalValue decimal.Decimal
}

// Insights is the owner facing summary of revenue, best category and stock
type Insights struct {
	Revenue        RevenueInsight
	TopCategory    CategoryPerformance
	Inventory      InventoryInsight
	Recommendation string
}

func GenerateInsights(in InsightInput) Insights {
	lines := ExpandLineItems(in.Items)
	lines = JoinProducts(lines, in.Products)
	lines = JoinCategories(lines, in.Categories)

	inventoryValue := InventoryValue(in.Products)

	return Insights{
		Revenue: RevenueInsight{
			Trend:      TrendDecimal(in.CurrentRevenue, in.PreviousRevenue),
			Comparison: "vs last " + in.Period.String(),
			Forecast:   Forecast(in.TrailingRevenue),
		},
		TopCategory: TopCategory(GroupByCategory(lines), inventoryValue),
		Inventory: InventoryInsight{
			LowStock:   in.LowStock,
			OutOfStock: in.OutOfStock,
			Health:     ClassifyHealth(in.LowStock),
			TotalValue: inventoryValue,
		},
		Recommendation: Recommend(in.LowStock, in.OutOfStock),
	}
}
