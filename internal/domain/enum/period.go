package enum

import (
	"encoding/json"
	"time"
)

// Period is the reporting window an owner picks on the dashboard
type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
	PeriodQuarter
	PeriodYear
)

var periodNames = [...]string{"week", "month", "quarter", "year"}

var periodLabels = [...]string{"This Week", "This Month", "This Quarter", "This Year"}

var periodDays = [...]int{7, 30, 90, 365}

// AllPeriods lists every period in display order.
func AllPeriods() []Period {
	return []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
}

// ParsePeriod maps a lowercase query token to a Period. Anything else,
// including the empty string and other casings, resolves to PeriodMonth.
func ParsePeriod(s string) Period {
	switch s {
	case "week":
		return PeriodWeek
	case "quarter":
		return PeriodQuarter
	case "year":
		return PeriodYear
	default:
		return PeriodMonth
	}
}

func (p Period) valid() bool {
	return p >= PeriodWeek && p <= PeriodYear
}

func (p Period) String() string {
	if !p.valid() {
		return periodNames[PeriodMonth]
	}
	return periodNames[p]
}

// Label is the human readable name shown in the period picker
func (p Period) Label() string {
	if !p.valid() {
		return periodLabels[PeriodMonth]
	}
	return periodLabels[p]
}

// Days is the length of the period in days
func (p Period) Days() int {
	if !p.valid() {
		return periodDays[PeriodMonth]
	}
	return periodDays[p]
}

// GroupKey returns the chart bucket for t: day of week (1=Sunday) for
// PeriodWeek, day of month for PeriodMonth, month of year otherwise.
func (p Period) GroupKey(t time.Time) int {
	switch p {
	case PeriodWeek:
		return int(t.Weekday()) + 1
	case PeriodQuarter, PeriodYear:
		return int(t.Month())
	default:
		return t.Day()
	}
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = ParsePeriod(str)
	return nil
}
