package repository

import "time"

// Window bounds a query on a record's date column. A nil Start is
// unbounded; a nil End means "up to now". End is exclusive unless
// IncludeEnd is set.
type Window struct {
	Start      *time.Time
	End        *time.Time
	IncludeEnd bool
}

// AllTime matches every record
func AllTime() Window {
	return Window{}
}

// Since matches records at or after start
func Since(start time.Time) Window {
	return Window{Start: &start}
}

// Between matches records in [start, end)
func Between(start, end time.Time) Window {
	return Window{Start: &start, End: &end}
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil {
		if w.IncludeEnd {
			return !t.After(*w.End)
		}
		return t.Before(*w.End)
	}
	return true
}
