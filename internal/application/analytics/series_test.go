package analytics

import (
	"testing"
	"time"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(at time.Time, total int64) entity.Order {
	return entity.Order{CreatedAt: at, TotalAmount: decimal.NewFromInt(total), Status: enum.OrderStatusCompleted}
}

func TestBuildSeriesWeekByDayOfWeek(t *testing.T) {
	// 2024-06-30 is a Sunday
	now := time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(time.Date(2024, 6, 24, 9, 0, 0, 0, time.UTC), 10), // Monday
		order(time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC), 5),  // Sunday
		order(time.Date(2024, 6, 24, 15, 0, 0, 0, time.UTC), 7), // Monday
		order(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), 99),  // outside
	}

	points := BuildSeries(orders, enum.ChartTypeSales, enum.PeriodWeek, ChartWindow(enum.PeriodWeek, now))

	require.Len(t, points, 2)
	assert.Equal(t, "1", points[0].Name)
	assert.Equal(t, "5", points[0].Value.String())
	assert.Equal(t, "2", points[1].Name)
	assert.Equal(t, "17", points[1].Value.String())
}

func TestBuildSeriesOrdersCount(t *testing.T) {
	now := time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), 10),
		order(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), 20),
		order(time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC), 30),
	}

	points := BuildSeries(orders, enum.ChartTypeOrders, enum.PeriodMonth, ChartWindow(enum.PeriodMonth, now))

	require.Len(t, points, 2)
	assert.Equal(t, "3", points[0].Name)
	assert.Equal(t, "1", points[0].Value.String())
	assert.Equal(t, "12", points[1].Name)
	assert.Equal(t, "2", points[1].Value.String())
}

func TestBuildSeriesYearByMonth(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC), 1),
		order(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 2),
		order(time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), 3),
	}

	points := BuildSeries(orders, enum.ChartTypeSales, enum.PeriodYear, ChartWindow(enum.PeriodYear, now))

	require.Len(t, points, 2)
	assert.Equal(t, "2", points[0].Name)
	assert.Equal(t, "12", points[1].Name)
}

func TestBuildSeriesProperties(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	w := ChartWindow(enum.PeriodQuarter, now)

	var orders []entity.Order
	total := decimal.Zero
	for i := 0; i < 40; i++ {
		o := order(now.AddDate(0, 0, -i*2), int64(i+1))
		orders = append(orders, o)
		if w.Contains(o.CreatedAt) {
			total = total.Add(o.TotalAmount)
		}
	}

	points := BuildSeries(orders, enum.ChartTypeSales, enum.PeriodQuarter, w)

	assert.LessOrEqual(t, len(points), 12)
	sum := decimal.Zero
	for i, p := range points {
		if i > 0 {
			assert.Less(t, points[i-1].Key, p.Key)
		}
		sum = sum.Add(p.Value)
	}
	assert.True(t, total.Equal(sum), "series must conserve revenue: %s != %s", total, sum)
}

func TestBuildSeriesEmpty(t *testing.T) {
	points := BuildSeries(nil, enum.ChartTypeSales, enum.PeriodMonth, ChartWindow(enum.PeriodMonth, time.Now()))
	assert.NotNil(t, points)
	assert.Empty(t, points)
}
