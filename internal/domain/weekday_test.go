package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-10-13 is a Monday, 2025-10-19 a Sunday. The mapping is verified
// against known calendar dates rather than Go's time.Weekday numbering,
// which starts the week at Sunday=0.
func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), Monday},
		{time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), Tuesday},
		{time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Wednesday},
		{time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), Thursday},
		{time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), Friday},
		{time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), Saturday},
		{time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), Sunday},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayIndex(tt.date), "date=%s", tt.date.Format(DateFormat))
	}
}

// Both week boundaries: Sunday maps to the last index, the following
// Monday wraps back to 0.
func TestWeekdayIndex_WeekBoundaries(t *testing.T) {
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, Sunday, WeekdayIndex(sunday))
	assert.Equal(t, 6, WeekdayIndex(sunday))

	nextMonday := sunday.AddDate(0, 0, 1)
	assert.Equal(t, time.Monday, nextMonday.Weekday())
	assert.Equal(t, Monday, WeekdayIndex(nextMonday))
	assert.Equal(t, 0, WeekdayIndex(nextMonday))
}

// A date stored for "Sunday" under the domain convention must resolve for
// a real Sunday even though time.Weekday would index it as 0.
func TestWeekdayIndex_ResolvesSundaySchedule(t *testing.T) {
	week := []*OperatingHours{
		{LocationID: 1, DayOfWeek: Sunday, OpenTime: "10:00", CloseTime: "16:00"},
	}

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	record := ScheduleForDay(week, WeekdayIndex(sunday))
	assert.NotNil(t, record)
	assert.Equal(t, "10:00", record.OpenTime.String())
}
