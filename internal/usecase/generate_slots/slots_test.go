package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestPartitionDay_ExactFit(t *testing.T) {
	// 09:00-12:00 / 30 мин = ровно 6 слотов
	intervals, err := partitionDay("09:00", "12:00", 30)
	require.NoError(t, err)
	require.Len(t, intervals, 6)

	assert.Equal(t, "09:00", intervals[0].Start.String())
	assert.Equal(t, "09:30", intervals[0].End.String())
	assert.Equal(t, "11:30", intervals[5].Start.String())
	assert.Equal(t, "12:00", intervals[5].End.String())
}

func TestPartitionDay_TrailingRemainderDropped(t *testing.T) {
	// 09:00-10:15 / 30 мин = 2 слота, хвост 15 минут отбрасывается
	intervals, err := partitionDay("09:00", "10:15", 30)
	require.NoError(t, err)
	require.Len(t, intervals, 2)

	assert.Equal(t, "09:00", intervals[0].Start.String())
	assert.Equal(t, "09:30", intervals[0].End.String())
	assert.Equal(t, "09:30", intervals[1].Start.String())
	assert.Equal(t, "10:00", intervals[1].End.String())
}

func TestPartitionDay_WindowShorterThanSlot(t *testing.T) {
	intervals, err := partitionDay("09:00", "09:20", 30)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

// Свойство: при (close-open) mod duration == 0 количество слотов равно
// (close-open)/duration, первый начинается в open, последний кончается в close
func TestPartitionDay_CountProperty(t *testing.T) {
	tests := []struct {
		open, close string
		duration    int
		wantCount   int
	}{
		{"09:00", "18:00", 60, 9},
		{"09:00", "18:00", 30, 18},
		{"09:00", "18:00", 15, 36},
		{"00:00", "23:00", 60, 23},
		{"08:30", "12:30", 20, 12},
	}

	for _, tt := range tests {
		intervals, err := partitionDay(types.TimeString(tt.open), types.TimeString(tt.close), tt.duration)
		require.NoError(t, err)
		require.Len(t, intervals, tt.wantCount, "%s-%s/%d", tt.open, tt.close, tt.duration)
		assert.Equal(t, tt.open, intervals[0].Start.String())
		assert.Equal(t, tt.close, intervals[len(intervals)-1].End.String())
	}
}

// Сгенерированные интервалы одного дня попарно не пересекаются
func TestPartitionDay_NoPairwiseOverlap(t *testing.T) {
	intervals, err := partitionDay("09:00", "18:00", 45)
	require.NoError(t, err)
	require.NotEmpty(t, intervals)

	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			overlap := domain.IntervalsOverlap(
				intervals[i].Start, intervals[i].End,
				intervals[j].Start, intervals[j].End,
			)
			assert.False(t, overlap, "intervals %d and %d overlap", i, j)
		}
	}
}

func TestGenerateCandidates_SkipsClosedAndMissingDays(t *testing.T) {
	// Неделя: пн открыт, вт закрыт, остальные дни записей не имеют
	week := []*domain.OperatingHours{
		{LocationID: 1, DayOfWeek: domain.Monday, OpenTime: "09:00", CloseTime: "11:00"},
		{LocationID: 1, DayOfWeek: domain.Tuesday, IsClosed: true},
	}

	// 2025-10-13 (пн) .. 2025-10-15 (ср)
	start := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	candidates, err := generateCandidates(1, nil, start, end, 60, week)
	require.NoError(t, err)

	// Слоты только за понедельник: 09:00-10:00, 10:00-11:00
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.Equal(t, start, c.Date)
		assert.Equal(t, domain.StatusAvailable, c.Status)
		assert.Nil(t, c.BookingID)
	}
}

func TestGenerateCandidates_SundaySchedule(t *testing.T) {
	// Запись хранится под доменным индексом воскресенья (6),
	// а не под time.Weekday-индексом (0)
	week := []*domain.OperatingHours{
		{LocationID: 1, DayOfWeek: domain.Sunday, OpenTime: "10:00", CloseTime: "12:00"},
	}

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	candidates, err := generateCandidates(1, nil, sunday, sunday, 60, week)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "10:00", candidates[0].StartTime.String())
}

func TestGenerateCandidates_MultipleDaysWithStaff(t *testing.T) {
	week := []*domain.OperatingHours{
		{LocationID: 1, DayOfWeek: domain.Monday, OpenTime: "09:00", CloseTime: "10:00"},
		{LocationID: 1, DayOfWeek: domain.Wednesday, OpenTime: "14:00", CloseTime: "15:00"},
	}

	start := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // пн
	end := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)   // вс

	staffID := ptr.Ptr(int64(7))
	candidates, err := generateCandidates(1, staffID, start, end, 30, week)
	require.NoError(t, err)

	// 2 слота в понедельник + 2 в среду
	require.Len(t, candidates, 4)
	for _, c := range candidates {
		require.NotNil(t, c.StaffID)
		assert.Equal(t, int64(7), *c.StaffID)
	}
}

func TestFilterAgainstBooked(t *testing.T) {
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	week := []*domain.OperatingHours{
		{LocationID: 1, DayOfWeek: domain.Monday, OpenTime: "09:00", CloseTime: "12:00"},
	}
	candidates, err := generateCandidates(1, nil, date, date, 30, week)
	require.NoError(t, err)
	require.Len(t, candidates, 6)

	booked := []*domain.TimeSlot{
		{
			ID:         101,
			LocationID: 1,
			Date:       date,
			StartTime:  "10:00",
			EndTime:    "10:30",
			Status:     domain.StatusBooked,
			BookingID:  ptr.Ptr(int64(55)),
		},
	}

	filtered := filterAgainstBooked(candidates, booked)

	// Кандидат 10:00-10:30 отброшен, остальные пять остались
	require.Len(t, filtered, 5)
	for _, c := range filtered {
		assert.NotEqual(t, "10:00", c.StartTime.String())
	}
}

func TestFilterAgainstBooked_NoBooked(t *testing.T) {
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	slot, err := domain.NewTimeSlot(1, nil, date, "09:00", "09:30")
	require.NoError(t, err)

	candidates := []*domain.TimeSlot{slot}
	assert.Equal(t, candidates, filterAgainstBooked(candidates, nil))
}
