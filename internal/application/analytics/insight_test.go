package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogue struct {
	beverages, snacks entity.Category
	tea, crisps, soda entity.Product
	orphan            entity.Product
}

func newCatalogue() catalogue {
	c := catalogue{
		beverages: entity.Category{ID: uuid.New(), Name: "Beverages"},
		snacks:    entity.Category{ID: uuid.New(), Name: "Snacks"},
	}
	c.tea = entity.Product{ID: uuid.New(), Name: "Tea", Price: decimal.NewFromInt(2), Stock: 50, CategoryID: &c.beverages.ID}
	c.soda = entity.Product{ID: uuid.New(), Name: "Soda", Price: decimal.NewFromInt(1), Stock: 100, CategoryID: &c.beverages.ID}
	c.crisps = entity.Product{ID: uuid.New(), Name: "Crisps", Price: decimal.NewFromInt(3), Stock: 0, CategoryID: &c.snacks.ID}
	c.orphan = entity.Product{ID: uuid.New(), Name: "Loose nuts", Price: decimal.NewFromInt(4), Stock: 5}
	return c
}

func (c catalogue) products() []entity.Product {
	return []entity.Product{c.tea, c.soda, c.crisps, c.orphan}
}

func (c catalogue) categories() []entity.Category {
	return []entity.Category{c.beverages, c.snacks}
}

func item(p entity.Product, qty int, price int64) entity.OrderItem {
	return entity.OrderItem{ProductID: p.ID, Quantity: qty, Price: decimal.NewFromInt(price)}
}

func TestJoinSteps(t *testing.T) {
	c := newCatalogue()
	items := []entity.OrderItem{
		item(c.tea, 3, 2),
		item(c.orphan, 1, 4),
		{ProductID: uuid.New(), Quantity: 9, Price: decimal.NewFromInt(100)},
	}

	lines := ExpandLineItems(items)
	require.Len(t, lines, 3)

	lines = JoinProducts(lines, c.products())
	require.Len(t, lines, 2, "line of a deleted product is dropped")

	lines = JoinCategories(lines, c.categories())
	assert.Equal(t, "Beverages", lines[0].Category)
	assert.Equal(t, UncategorizedName, lines[1].Category)
}

func TestGroupByCategory(t *testing.T) {
	line := func(category string, qty int, price int64) LineItem {
		return LineItem{
			OrderItem: entity.OrderItem{Quantity: qty, Price: decimal.NewFromInt(price)},
			Category:  category,
		}
	}
	lines := []LineItem{
		line("Snacks", 2, 3),
		line("Beverages", 3, 2),
		line("Beverages", 4, 1),
	}

	groups := GroupByCategory(lines)
	require.Len(t, groups, 2)
	assert.Equal(t, "Beverages", groups[0].Name)
	assert.Equal(t, int64(7), groups[0].Quantity)
	assert.Equal(t, "10", groups[0].Revenue.String())
	assert.Equal(t, "Snacks", groups[1].Name)
	assert.Equal(t, "6", groups[1].Revenue.String())
}

func TestTopCategory(t *testing.T) {
	t.Run("highest revenue wins", func(t *testing.T) {
		groups := []CategoryGroup{
			{Name: "Beverages", Quantity: 7, Revenue: decimal.NewFromInt(10)},
			{Name: "Snacks", Quantity: 2, Revenue: decimal.NewFromInt(30)},
		}
		top := TopCategory(groups, decimal.NewFromInt(200))
		assert.Equal(t, "Snacks", top.Name)
		assert.Equal(t, int64(15), top.Percentage)
		assert.Equal(t, int64(2), top.Quantity)
	})

	t.Run("ties go to the lexically smaller name", func(t *testing.T) {
		groups := []CategoryGroup{
			{Name: "Snacks", Revenue: decimal.NewFromInt(10)},
			{Name: "Desserts", Revenue: decimal.NewFromInt(10)},
			{Name: "Main Course", Revenue: decimal.NewFromInt(10)},
		}
		assert.Equal(t, "Desserts", TopCategory(groups, decimal.NewFromInt(100)).Name)
	})

	t.Run("zero inventory value uses a denominator of one", func(t *testing.T) {
		groups := []CategoryGroup{{Name: "Snacks", Revenue: decimal.NewFromInt(3)}}
		assert.Equal(t, int64(300), TopCategory(groups, decimal.Zero).Percentage)
	})

	t.Run("no sales", func(t *testing.T) {
		top := TopCategory(nil, decimal.NewFromInt(100))
		assert.Equal(t, NoTopCategoryName, top.Name)
		assert.True(t, top.Revenue.IsZero())
		assert.Zero(t, top.Percentage)
	})
}

func TestClassifyHealth(t *testing.T) {
	assert.Equal(t, HealthGood, ClassifyHealth(0))
	assert.Equal(t, HealthGood, ClassifyHealth(5))
	assert.Equal(t, HealthWarning, ClassifyHealth(6))
	assert.Equal(t, HealthWarning, ClassifyHealth(10))
	assert.Equal(t, HealthCritical, ClassifyHealth(11))
	assert.Equal(t, HealthCritical, ClassifyHealth(12))
}

func TestClassifyHealthIsMonotonic(t *testing.T) {
	rank := map[InventoryHealth]int{HealthGood: 0, HealthWarning: 1, HealthCritical: 2}
	prev := rank[ClassifyHealth(0)]
	for n := int64(1); n <= 50; n++ {
		cur := rank[ClassifyHealth(n)]
		assert.GreaterOrEqual(t, cur, prev, "lowStock=%d", n)
		prev = cur
	}
}

func TestRecommend(t *testing.T) {
	assert.Equal(t, RecommendUrgentReorder, Recommend(12, 0))
	assert.Equal(t, RecommendUrgentReorder, Recommend(11, 4))
	assert.Equal(t, RecommendRaiseStock, Recommend(6, 3))
	assert.Equal(t, RecommendRestock, Recommend(2, 2))
	assert.Equal(t, RecommendHealthy, Recommend(3, 0))
}

func TestForecast(t *testing.T) {
	assert.Equal(t, "115", Forecast(decimal.NewFromInt(100)).String())
	assert.True(t, Forecast(decimal.Zero).IsZero())
}

func TestGenerateInsights(t *testing.T) {
	c := newCatalogue()

	got := GenerateInsights(InsightInput{
		Period: enum.PeriodQuarter,
		Items: []entity.OrderItem{
			item(c.tea, 10, 2),
			item(c.soda, 5, 1),
			item(c.crisps, 2, 3),
		},
		Products:        c.products(),
		Categories:      c.categories(),
		LowStock:        2,
		OutOfStock:      1,
		TrailingRevenue: decimal.NewFromInt(200),
		CurrentRevenue:  decimal.NewFromInt(150),
		PreviousRevenue: decimal.NewFromInt(100),
	})

	assert.Equal(t, "50", got.Revenue.Trend.String())
	assert.Equal(t, "vs last quarter", got.Revenue.Comparison)
	assert.Equal(t, "230", got.Revenue.Forecast.String())

	// inventory value: 2*50 + 1*100 + 3*0 + 4*5 = 220
	assert.Equal(t, "220", got.Inventory.TotalValue.String())
	assert.Equal(t, "Beverages", got.TopCategory.Name)
	assert.Equal(t, "25", got.TopCategory.Revenue.String())
	assert.Equal(t, int64(11), got.TopCategory.Percentage)
	assert.Equal(t, int64(15), got.TopCategory.Quantity)

	assert.Equal(t, HealthGood, got.Inventory.Health)
	assert.Equal(t, RecommendRestock, got.Recommendation)
}

func TestGenerateInsightsCriticalStock(t *testing.T) {
	got := GenerateInsights(InsightInput{Period: enum.PeriodMonth, LowStock: 12})

	assert.Equal(t, HealthCritical, got.Inventory.Health)
	assert.Equal(t, RecommendUrgentReorder, got.Recommendation)
	assert.Equal(t, NoTopCategoryName, got.TopCategory.Name)
	assert.Equal(t, "vs last month", got.Revenue.Comparison)
}
