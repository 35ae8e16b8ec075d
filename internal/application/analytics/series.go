package analytics

import (
	"sort"
	"strconv"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SeriesPoint is one bucket of a chart series
type SeriesPoint struct {
	Key   int
	Name  string
	Value decimal.Decimal
}

// BuildSeries groups the orders inside w by the period's grouping key and
// either sums their totals or counts them. Points are ascending by key and
// only keys that occur are emitted.
func BuildSeries(orders []entity.Order, chartType enum.ChartType, period enum.Period, w repository.Window) []SeriesPoint {
	values := make(map[int]decimal.Decimal)

	for i := range orders {
		o := &orders[i]
		if !w.Contains(o.CreatedAt) {
			continue
		}
		key := period.GroupKey(o.CreatedAt.UTC())
		v, ok := values[key]
		if !ok {
			v = decimal.Zero
		}
		if chartType == enum.ChartTypeOrders {
			values[key] = v.Add(decimal.NewFromInt(1))
		} else {
			values[key] = v.Add(o.TotalAmount)
		}
	}

	keys := make([]int, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	points := make([]SeriesPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, SeriesPoint{Key: k, Name: strconv.Itoa(k), Value: values[k]})
	}
	return points
}
