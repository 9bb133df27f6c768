package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotStatus represents the lifecycle state of a time slot
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusBlocked   SlotStatus = "blocked"
)

// Transition errors of the slot lifecycle state machine
var (
	// ErrSlotNotAvailable returned when booking or blocking a slot that is not available
	ErrSlotNotAvailable = errors.New("domain: slot is not available")

	// ErrSlotNotBooked returned when releasing a slot that is not booked
	ErrSlotNotBooked = errors.New("domain: slot is not booked")

	// ErrSlotNotBlocked returned when unblocking a slot that is not blocked
	ErrSlotNotBlocked = errors.New("domain: slot is not blocked")

	// ErrSlotBooked returned when blocking a slot that is already booked
	ErrSlotBooked = errors.New("domain: slot is booked")

	// ErrInvalidSlotInterval returned when a slot's start time is not before its end time
	ErrInvalidSlotInterval = errors.New("domain: slot start time must be before end time")
)

// TimeSlot represents a bookable, fixed-duration time interval at a location
// on a specific date, optionally tied to a specific staff member.
// The interval is half-open: [StartTime, EndTime).
type TimeSlot struct {
	ID         int64
	LocationID int64
	StaffID    *int64 // nil = slot is not tied to a staff member
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     SlotStatus
	BookingID  *int64 // set iff Status == StatusBooked

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimeSlot creates an available slot for the given interval.
func NewTimeSlot(locationID int64, staffID *int64, date time.Time, start, end types.TimeString) (*TimeSlot, error) {
	if !start.IsBefore(end) {
		return nil, ErrInvalidSlotInterval
	}
	return &TimeSlot{
		LocationID: locationID,
		StaffID:    staffID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     StatusAvailable,
	}, nil
}

// IsAvailable returns true if the slot can currently be booked
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// IsBooked returns true if the slot is held by a booking
func (s *TimeSlot) IsBooked() bool {
	return s.Status == StatusBooked
}

// IsBlocked returns true if the slot is under an administrative hold
func (s *TimeSlot) IsBlocked() bool {
	return s.Status == StatusBlocked
}

// Book transitions Available -> Booked and attaches the booking.
// Only the storage layer's conditional update makes this transition safe
// under concurrent callers; this method expresses the rule itself.
func (s *TimeSlot) Book(bookingID int64) error {
	if s.Status != StatusAvailable {
		return ErrSlotNotAvailable
	}
	s.Status = StatusBooked
	s.BookingID = &bookingID
	return nil
}

// Release transitions Booked -> Available and detaches the booking.
// Releasing a slot that is not booked is a caller error.
func (s *TimeSlot) Release() error {
	if s.Status != StatusBooked {
		return ErrSlotNotBooked
	}
	s.Status = StatusAvailable
	s.BookingID = nil
	return nil
}

// Block transitions Available -> Blocked.
// A booked slot cannot be blocked.
func (s *TimeSlot) Block() error {
	if s.Status == StatusBooked {
		return ErrSlotBooked
	}
	if s.Status != StatusAvailable {
		return ErrSlotNotAvailable
	}
	s.Status = StatusBlocked
	return nil
}

// Unblock transitions Blocked -> Available.
func (s *TimeSlot) Unblock() error {
	if s.Status != StatusBlocked {
		return ErrSlotNotBlocked
	}
	s.Status = StatusAvailable
	return nil
}

// SameScope returns true if both slots compete for the same resource:
// same location, same date, and same staff member if both specify one.
// Slots with different staff members never conflict; a slot without a
// staff member conflicts with any staff on the same location and date.
func (s *TimeSlot) SameScope(other *TimeSlot) bool {
	if s.LocationID != other.LocationID {
		return false
	}
	if !sameDate(s.Date, other.Date) {
		return false
	}
	if s.StaffID != nil && other.StaffID != nil {
		return *s.StaffID == *other.StaffID
	}
	return true
}

// Overlaps returns true if the two slots are in the same scope and their
// half-open intervals share at least one instant.
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	return s.SameScope(other) && IntervalsOverlap(s.StartTime, s.EndTime, other.StartTime, other.EndTime)
}

// IntervalsOverlap reports whether two half-open intervals [s1,e1) and
// [s2,e2) share any instant. Touching intervals do not overlap.
func IntervalsOverlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// SlotRangeFilter describes a slot query over a date range
type SlotRangeFilter struct {
	LocationID int64
	StaffID    *int64      // nil = all staff
	StartDate  time.Time   // inclusive
	EndDate    time.Time   // inclusive
	Status     *SlotStatus // nil = all statuses
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
