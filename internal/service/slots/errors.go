package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrAccessDenied возвращается, когда у партнера нет прав на локацию
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotNotAvailable возвращается при попытке забронировать недоступный слот
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrSlotNotBooked возвращается при попытке освободить незабронированный слот
	ErrSlotNotBooked = errors.New("slot is not booked")

	// ErrSlotNotBlocked возвращается при попытке разблокировать незаблокированный слот
	ErrSlotNotBlocked = errors.New("slot is not blocked")

	// ErrSlotBooked возвращается, когда операция запрещена для забронированного слота
	ErrSlotBooked = errors.New("slot is booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
