package domain

// Business validation constants
const (
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxGenerationRangeDays = 92  // ~3 months per generation request
	DaysPerWeek            = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotStatuses список всех статусов слота
// Используется при валидации входных данных
var SlotStatuses = []SlotStatus{
	StatusAvailable,
	StatusBooked,
	StatusBlocked,
}
