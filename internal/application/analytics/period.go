package analytics

import (
	"time"

	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
)

// ForecastDays is the trailing window the revenue forecast is based on
const ForecastDays = 30

// PeriodWindows is the current window of a period and the equally long
// window immediately before it.
type PeriodWindows struct {
	Period   enum.Period
	Current  repository.Window
	Previous repository.Window
}

// ResolvePeriod returns Current = [now-days, now) and
// Previous = [now-2*days, now-days).
func ResolvePeriod(p enum.Period, now time.Time) PeriodWindows {
	days := p.Days()
	currentStart := now.AddDate(0, 0, -days)
	previousStart := currentStart.AddDate(0, 0, -days)

	return PeriodWindows{
		Period:   p,
		Current:  repository.Between(currentStart, now),
		Previous: repository.Between(previousStart, currentStart),
	}
}

// ChartWindow is [now-days, now], closed on both ends
func ChartWindow(p enum.Period, now time.Time) repository.Window {
	start := now.AddDate(0, 0, -p.Days())
	return repository.Window{Start: &start, End: &now, IncludeEnd: true}
}

// TrailingWindow covers the last n days up to now
func TrailingWindow(days int, now time.Time) repository.Window {
	return repository.Since(now.AddDate(0, 0, -days))
}
