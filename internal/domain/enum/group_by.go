package enum

// GroupBy is the bucket granularity of the sales report
type GroupBy int

const (
	GroupByDay GroupBy = iota
	GroupByMonth
	GroupByYear
)

// ParseGroupBy defaults to GroupByDay for unknown tokens, matched exactly.
func ParseGroupBy(s string) GroupBy {
	switch s {
	case "month":
		return GroupByMonth
	case "year":
		return GroupByYear
	default:
		return GroupByDay
	}
}

func (g GroupBy) String() string {
	switch g {
	case GroupByMonth:
		return "month"
	case GroupByYear:
		return "year"
	default:
		return "day"
	}
}

// SQLFormat is the Postgres to_char pattern that formats a bucket key
func (g GroupBy) SQLFormat() string {
	switch g {
	case GroupByMonth:
		return "YYYY-MM"
	case GroupByYear:
		return "YYYY"
	default:
		return "YYYY-MM-DD"
	}
}
