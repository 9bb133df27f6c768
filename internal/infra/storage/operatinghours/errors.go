package operatinghours

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание локации не найдено
	ErrScheduleNotFound = errors.New("operatinghours.repository: schedule not found")

	// ErrDuplicateDay возвращается при нарушении уникальности (location_id, day_of_week)
	ErrDuplicateDay = errors.New("operatinghours.repository: duplicate day of week")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("operatinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("operatinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("operatinghours.repository: failed to scan row")
)
