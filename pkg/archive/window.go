package archive

import (
	"fmt"
	"time"
)

// Window is a year-independent span of at most a week around a calendar
// date. Start and end may sit in different months when the span crosses a
// month boundary.
type Window struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// WindowAround builds the ±radius window around t. time.AddDate carries
// month and year boundaries, so day 1 of a month correctly wraps into the
// tail of the previous month.
func WindowAround(t time.Time, radius int) Window {
	start := t.AddDate(0, 0, -radius)
	end := t.AddDate(0, 0, radius)
	return Window{
		StartMonth: start.Month(),
		StartDay:   start.Day(),
		EndMonth:   end.Month(),
		EndDay:     end.Day(),
	}
}

// Contains reports whether the month/day pair falls inside the window,
// regardless of year.
func (w Window) Contains(month time.Month, day int) bool {
	if w.StartMonth == w.EndMonth {
		return month == w.StartMonth && day >= w.StartDay && day <= w.EndDay
	}
	if month == w.StartMonth {
		return day >= w.StartDay
	}
	if month == w.EndMonth {
		return day <= w.EndDay
	}
	return false
}

// wrapsYear reports whether the window crosses a year boundary
// (late December into early January).
func (w Window) wrapsYear() bool {
	return w.StartMonth > w.EndMonth
}

// String renders the window like "Jan 30 - Feb 5".
func (w Window) String() string {
	start := time.Date(2000, w.StartMonth, w.StartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, w.EndMonth, w.EndDay, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
