package generate_slots

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("generate_slots: location not found")

	// ErrAccessDenied возвращается, когда локация не принадлежит партнеру
	ErrAccessDenied = errors.New("generate_slots: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата конца раньше даты начала
	// или диапазон превышает допустимый
	ErrInvalidDateRange = errors.New("generate_slots: invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
