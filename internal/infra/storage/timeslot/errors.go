package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: slot not found")

	// ErrSlotNotAvailable возвращается, когда условное обновление не прошло,
	// потому что слот не находится в статусе available
	ErrSlotNotAvailable = errors.New("timeslot.repository: slot is not available")

	// ErrSlotNotBooked возвращается при попытке освободить незабронированный слот
	ErrSlotNotBooked = errors.New("timeslot.repository: slot is not booked")

	// ErrSlotNotBlocked возвращается при попытке разблокировать незаблокированный слот
	ErrSlotNotBlocked = errors.New("timeslot.repository: slot is not blocked")

	// ErrSlotBooked возвращается при попытке заблокировать забронированный слот
	ErrSlotBooked = errors.New("timeslot.repository: slot is booked")

	// ErrDuplicateSlot возвращается при нарушении уникальности
	// (location_id, staff_id, slot_date, start_time)
	ErrDuplicateSlot = errors.New("timeslot.repository: duplicate slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
