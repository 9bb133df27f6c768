package domain

import "time"

// Domain day-of-week indices, Monday first.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// WeekdayIndex maps a calendar date to the domain's day-of-week index
// (Monday=0 .. Sunday=6). Go's time.Weekday counts from Sunday=0, so the
// conversion is isolated here instead of being spread inline through the
// generator.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
