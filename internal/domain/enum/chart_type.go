package enum

// ChartType selects what a chart series measures
type ChartType int

const (
	// ChartTypeSales sums order totals per bucket
	ChartTypeSales ChartType = iota
	// ChartTypeOrders counts orders per bucket
	ChartTypeOrders
)

// ParseChartType only recognises the exact token "orders"; everything
// else is a sales chart.
func ParseChartType(s string) ChartType {
	if s == "orders" {
		return ChartTypeOrders
	}
	return ChartTypeSales
}

func (t ChartType) String() string {
	if t == ChartTypeOrders {
		return "orders"
	}
	return "sales"
}
