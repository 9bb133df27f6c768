package schedule

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrAccessDenied возвращается, когда у партнера нет прав на локацию
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateDay возвращается, когда день недели указан дважды
	ErrDuplicateDay = errors.New("duplicate day of week")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
