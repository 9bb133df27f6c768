package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// partitionDay разбивает окно [open, close) на последовательные
// непересекающиеся интервалы ровно по durationMinutes минут.
// Арифметика целочисленная, в минутах от полуночи.
// Неполный хвост меньше durationMinutes отбрасывается
func partitionDay(open, close types.TimeString, durationMinutes int) ([]slotInterval, error) {
	openMinutes, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return nil, err
	}

	intervals := make([]slotInterval, 0, (closeMinutes-openMinutes)/durationMinutes)

	for start := openMinutes; start+durationMinutes <= closeMinutes; start += durationMinutes {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromMinutes(start + durationMinutes)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, slotInterval{Start: startTime, End: endTime})
	}

	return intervals, nil
}

// generateCandidates генерирует кандидатов для всех дат диапазона [startDate, endDate]
// Для даты без записи расписания или с is_closed слоты не создаются
func generateCandidates(
	locationID int64,
	staffID *int64,
	startDate, endDate time.Time,
	durationMinutes int,
	week []*domain.OperatingHours,
) ([]*domain.TimeSlot, error) {
	candidates := make([]*domain.TimeSlot, 0)

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		schedule := domain.ScheduleForDay(week, domain.WeekdayIndex(date))
		if schedule == nil || schedule.IsClosed {
			continue
		}

		intervals, err := partitionDay(schedule.OpenTime, schedule.CloseTime, durationMinutes)
		if err != nil {
			return nil, err
		}

		for _, interval := range intervals {
			slot, err := domain.NewTimeSlot(locationID, staffID, date, interval.Start, interval.End)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, slot)
		}
	}

	return candidates, nil
}

// filterAgainstBooked отбрасывает кандидатов, пересекающихся с выжившими
// забронированными слотами. Забронированные слоты регенерация не трогает,
// поэтому новые слоты не должны ни дублировать их ключи, ни накладываться
// на их интервалы
func filterAgainstBooked(candidates, booked []*domain.TimeSlot) []*domain.TimeSlot {
	if len(booked) == 0 {
		return candidates
	}

	result := make([]*domain.TimeSlot, 0, len(candidates))

	for _, candidate := range candidates {
		conflicts := false
		for _, b := range booked {
			if candidate.Overlaps(b) {
				conflicts = true
				break
			}
		}
		if !conflicts {
			result = append(result, candidate)
		}
	}

	return result
}
