package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func newSlot(t *testing.T, status SlotStatus) *TimeSlot {
	t.Helper()
	slot, err := NewTimeSlot(1, nil, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), "09:00", "09:30")
	require.NoError(t, err)
	slot.Status = status
	if status == StatusBooked {
		slot.BookingID = ptr.Ptr(int64(77))
	}
	return slot
}

func TestNewTimeSlot_InvalidInterval(t *testing.T) {
	_, err := NewTimeSlot(1, nil, time.Now(), "10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidSlotInterval)

	_, err = NewTimeSlot(1, nil, time.Now(), "10:30", "10:00")
	assert.ErrorIs(t, err, ErrInvalidSlotInterval)
}

func TestTimeSlot_Book(t *testing.T) {
	slot := newSlot(t, StatusAvailable)

	err := slot.Book(42)
	require.NoError(t, err)
	assert.Equal(t, StatusBooked, slot.Status)
	require.NotNil(t, slot.BookingID)
	assert.Equal(t, int64(42), *slot.BookingID)

	// Повторное бронирование должно завершиться ошибкой
	err = slot.Book(43)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, int64(42), *slot.BookingID)
}

func TestTimeSlot_Book_Blocked(t *testing.T) {
	slot := newSlot(t, StatusBlocked)

	err := slot.Book(42)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, slot.BookingID)
}

func TestTimeSlot_Release(t *testing.T) {
	slot := newSlot(t, StatusBooked)

	err := slot.Release()
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, slot.Status)
	assert.Nil(t, slot.BookingID)
}

func TestTimeSlot_Release_NotBooked(t *testing.T) {
	for _, status := range []SlotStatus{StatusAvailable, StatusBlocked} {
		slot := newSlot(t, status)
		err := slot.Release()
		assert.ErrorIs(t, err, ErrSlotNotBooked, "status=%s", status)
		assert.Equal(t, status, slot.Status)
	}
}

func TestTimeSlot_Block(t *testing.T) {
	slot := newSlot(t, StatusAvailable)

	err := slot.Block()
	require.NoError(t, err)
	assert.Equal(t, StatusBlocked, slot.Status)
}

func TestTimeSlot_Block_Booked(t *testing.T) {
	slot := newSlot(t, StatusBooked)

	err := slot.Block()
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.Equal(t, StatusBooked, slot.Status)
}

func TestTimeSlot_Unblock(t *testing.T) {
	slot := newSlot(t, StatusBlocked)

	err := slot.Unblock()
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, slot.Status)
}

func TestTimeSlot_Unblock_NotBlocked(t *testing.T) {
	for _, status := range []SlotStatus{StatusAvailable, StatusBooked} {
		slot := newSlot(t, status)
		err := slot.Unblock()
		assert.ErrorIs(t, err, ErrSlotNotBlocked, "status=%s", status)
		assert.Equal(t, status, slot.Status)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 types.TimeString
		want           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "10:00", "09:15", "09:45", true},
		{"touching end to start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start to end", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			// Пересечение симметрично
			assert.Equal(t, tt.want, IntervalsOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestTimeSlot_Overlaps_Scope(t *testing.T) {
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	base := &TimeSlot{LocationID: 1, Date: date, StartTime: "09:00", EndTime: "10:00"}

	otherLocation := &TimeSlot{LocationID: 2, Date: date, StartTime: "09:00", EndTime: "10:00"}
	assert.False(t, base.Overlaps(otherLocation))

	otherDate := &TimeSlot{LocationID: 1, Date: date.AddDate(0, 0, 1), StartTime: "09:00", EndTime: "10:00"}
	assert.False(t, base.Overlaps(otherDate))

	// Слот без staff пересекается со слотом любого сотрудника
	staffSlot := &TimeSlot{LocationID: 1, Date: date, StaffID: ptr.Ptr(int64(5)), StartTime: "09:30", EndTime: "10:30"}
	assert.True(t, base.Overlaps(staffSlot))

	// Слоты разных сотрудников не пересекаются
	otherStaff := &TimeSlot{LocationID: 1, Date: date, StaffID: ptr.Ptr(int64(6)), StartTime: "09:30", EndTime: "10:30"}
	assert.False(t, staffSlot.Overlaps(otherStaff))

	// Слоты одного сотрудника пересекаются
	sameStaff := &TimeSlot{LocationID: 1, Date: date, StaffID: ptr.Ptr(int64(5)), StartTime: "10:00", EndTime: "11:00"}
	assert.False(t, staffSlot.Overlaps(sameStaff)) // граничат, не пересекаются
	sameStaff.StartTime = "09:45"
	assert.True(t, staffSlot.Overlaps(sameStaff))
}
