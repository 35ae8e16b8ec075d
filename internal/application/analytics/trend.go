package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// TrendSet holds the percentage change of every snapshot metric
type TrendSet struct {
	Products     float64 `json:"products"`
	Suppliers    float64 `json:"suppliers"`
	Orders       float64 `json:"orders"`
	Expenses     float64 `json:"expenses"`
	Transactions float64 `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	Users        float64 `json:"users"`
}

// Trend is the percentage change from previous to current, rounded to one
// decimal place. A zero previous value yields 100 when current grew and 0
// otherwise.
func Trend(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return TrendDecimal(decimal.NewFromFloat(current), decimal.NewFromFloat(previous)).InexactFloat64()
}

// TrendDecimal is Trend for money values
func TrendDecimal(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}

// Trends applies Trend to each metric of two snapshots
func Trends(current, previous Snapshot) TrendSet {
	count := func(c, p int64) float64 {
		return Trend(float64(c), float64(p))
	}
	return TrendSet{
		Products:     count(current.Products, previous.Products),
		Suppliers:    count(current.Suppliers, previous.Suppliers),
		Orders:       count(current.Orders, previous.Orders),
		Expenses:     count(current.Expenses, previous.Expenses),
		Transactions: count(current.Transactions, previous.Transactions),
		Revenue:      TrendDecimal(current.Revenue, previous.Revenue).InexactFloat64(),
		Users:        count(current.Users, previous.Users),
	}
}
