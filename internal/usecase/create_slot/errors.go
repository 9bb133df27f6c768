package create_slot

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_slot: location not found")

	// ErrAccessDenied возвращается, когда локация не принадлежит партнеру
	ErrAccessDenied = errors.New("create_slot: access denied")

	// ErrSlotOverlap возвращается, когда слот пересекается с существующим
	ErrSlotOverlap = errors.New("create_slot: slot overlaps an existing slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot: internal error")
)
