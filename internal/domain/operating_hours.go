package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidDayOfWeek returned when a day index is outside 0..6
	ErrInvalidDayOfWeek = errors.New("domain: day of week must be in range 0..6")

	// ErrInvalidOperatingWindow returned when open time is not before close time
	ErrInvalidOperatingWindow = errors.New("domain: open time must be before close time")
)

// OperatingHours is the weekly template entry for one location and one
// weekday: an open/close window or a closed flag. At most one record
// exists per (LocationID, DayOfWeek). Times are location-local wall-clock
// strings; the surrounding system owns timezone context.
type OperatingHours struct {
	ID         int64
	LocationID int64
	DayOfWeek  int // Monday=0 .. Sunday=6, see WeekdayIndex
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	IsClosed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the record's invariants.
func (h *OperatingHours) Validate() error {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, h.DayOfWeek)
	}
	if h.IsClosed {
		return nil
	}
	if err := h.OpenTime.Validate(); err != nil {
		return err
	}
	if err := h.CloseTime.Validate(); err != nil {
		return err
	}
	if !h.OpenTime.IsBefore(h.CloseTime) {
		return fmt.Errorf("%w: open=%s close=%s", ErrInvalidOperatingWindow, h.OpenTime, h.CloseTime)
	}
	return nil
}

// IsOpenAt reports whether the location is open at the given wall-clock
// time on this weekday: openTime <= t < closeTime, lexical comparison.
func (h *OperatingHours) IsOpenAt(t types.TimeString) bool {
	if h.IsClosed {
		return false
	}
	return !t.IsBefore(h.OpenTime) && t.IsBefore(h.CloseTime)
}

// ScheduleForDay returns the operating hours record for the given day
// index, or nil if the week template has no record for that day.
func ScheduleForDay(hours []*OperatingHours, dayOfWeek int) *OperatingHours {
	for _, h := range hours {
		if h.DayOfWeek == dayOfWeek {
			return h
		}
	}
	return nil
}
