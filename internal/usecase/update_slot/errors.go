package update_slot

import "errors"

var (
	// ErrSlotNotFound - слот не найден
	ErrSlotNotFound = errors.New("update_slot.usecase: slot not found")
	// ErrLocationNotFound - локация не найдена
	ErrLocationNotFound = errors.New("update_slot.usecase: location not found")
	// ErrAccessDenied - у партнёра нет прав на эту локацию
	ErrAccessDenied = errors.New("update_slot.usecase: access denied")
	// ErrSlotBooked - слот забронирован, редактирование запрещено
	ErrSlotBooked = errors.New("update_slot.usecase: slot is booked")
	// ErrSlotOverlap - новый интервал пересекается с существующим слотом
	ErrSlotOverlap = errors.New("update_slot.usecase: slot overlaps with existing slot")
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("update_slot.usecase: invalid input")
	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("update_slot.usecase: internal error")
)
