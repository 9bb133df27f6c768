package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatingHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hours   OperatingHours
		wantErr error
	}{
		{
			name:  "valid window",
			hours: OperatingHours{LocationID: 1, DayOfWeek: Monday, OpenTime: "09:00", CloseTime: "18:00"},
		},
		{
			name:  "closed day skips window check",
			hours: OperatingHours{LocationID: 1, DayOfWeek: Sunday, IsClosed: true},
		},
		{
			name:    "day out of range",
			hours:   OperatingHours{LocationID: 1, DayOfWeek: 7, OpenTime: "09:00", CloseTime: "18:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "negative day",
			hours:   OperatingHours{LocationID: 1, DayOfWeek: -1, IsClosed: true},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "open equals close",
			hours:   OperatingHours{LocationID: 1, DayOfWeek: Tuesday, OpenTime: "09:00", CloseTime: "09:00"},
			wantErr: ErrInvalidOperatingWindow,
		},
		{
			name:    "open after close",
			hours:   OperatingHours{LocationID: 1, DayOfWeek: Tuesday, OpenTime: "18:00", CloseTime: "09:00"},
			wantErr: ErrInvalidOperatingWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOperatingHours_IsOpenAt(t *testing.T) {
	hours := OperatingHours{LocationID: 1, DayOfWeek: Monday, OpenTime: "09:00", CloseTime: "18:00"}

	assert.False(t, hours.IsOpenAt("08:59"))
	assert.True(t, hours.IsOpenAt("09:00")) // open boundary is inclusive
	assert.True(t, hours.IsOpenAt("12:30"))
	assert.True(t, hours.IsOpenAt("17:59"))
	assert.False(t, hours.IsOpenAt("18:00")) // close boundary is exclusive
	assert.False(t, hours.IsOpenAt("23:00"))
}

func TestOperatingHours_IsOpenAt_Closed(t *testing.T) {
	hours := OperatingHours{LocationID: 1, DayOfWeek: Sunday, OpenTime: "09:00", CloseTime: "18:00", IsClosed: true}
	assert.False(t, hours.IsOpenAt("12:00"))
}

func TestScheduleForDay(t *testing.T) {
	week := []*OperatingHours{
		{LocationID: 1, DayOfWeek: Monday, OpenTime: "09:00", CloseTime: "18:00"},
		{LocationID: 1, DayOfWeek: Saturday, OpenTime: "10:00", CloseTime: "14:00"},
	}

	mon := ScheduleForDay(week, Monday)
	assert.NotNil(t, mon)
	assert.Equal(t, "09:00", mon.OpenTime.String())

	assert.Nil(t, ScheduleForDay(week, Wednesday))
}
