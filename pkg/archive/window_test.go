package archive

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWindowAround(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  Window
	}{
		{
			name:  "mid-month",
			today: date(2023, time.June, 15),
			want:  Window{time.June, 12, time.June, 18},
		},
		{
			name:  "first of month wraps into previous month",
			today: date(2023, time.May, 1),
			want:  Window{time.April, 28, time.May, 4},
		},
		{
			name:  "first of March wraps into short February",
			today: date(2023, time.March, 1),
			want:  Window{time.February, 26, time.March, 4},
		},
		{
			name:  "first of March in a leap year",
			today: date(2024, time.March, 1),
			want:  Window{time.February, 27, time.March, 4},
		},
		{
			name:  "end of month wraps forward",
			today: date(2023, time.January, 30),
			want:  Window{time.January, 27, time.February, 2},
		},
		{
			name:  "new year wraps across December",
			today: date(2023, time.January, 2),
			want:  Window{time.December, 30, time.January, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WindowAround(tt.today, 3); got != tt.want {
				t.Errorf("WindowAround(%s) = %+v, want %+v", tt.today.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	wrapped := Window{time.January, 30, time.February, 2}

	tests := []struct {
		month time.Month
		day   int
		want  bool
	}{
		{time.January, 30, true},
		{time.January, 31, true},
		{time.February, 1, true},
		{time.February, 2, true},
		{time.January, 29, false},
		{time.February, 3, false},
		// Same month/day numbers as members, but the wrong month.
		{time.March, 1, false},
		{time.July, 31, false},
	}
	for _, tt := range tests {
		if got := wrapped.Contains(tt.month, tt.day); got != tt.want {
			t.Errorf("Contains(%s %d) = %v, want %v", tt.month, tt.day, got, tt.want)
		}
	}

	plain := Window{time.June, 12, time.June, 18}
	if !plain.Contains(time.June, 15) || plain.Contains(time.June, 19) || plain.Contains(time.May, 15) {
		t.Error("single-month window predicate wrong")
	}
}

func TestWindowString(t *testing.T) {
	w := Window{time.January, 30, time.February, 2}
	if got := w.String(); got != "Jan 30 - Feb 2" {
		t.Errorf("String() = %q", got)
	}
}

func TestWindowWrapsYear(t *testing.T) {
	if !(Window{time.December, 30, time.January, 5}).wrapsYear() {
		t.Error("December-January window must report a year wrap")
	}
	if (Window{time.January, 27, time.February, 2}).wrapsYear() {
		t.Error("January-February window must not report a year wrap")
	}
}
