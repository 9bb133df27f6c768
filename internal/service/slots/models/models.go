package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе слота
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// BookSlotRequest запрос на бронирование слота (внутренний API)
type BookSlotRequest struct {
	BookingID int64 `json:"bookingId"`
}

// GetAvailableSlotsRequest запрос на получение доступных слотов
type GetAvailableSlotsRequest struct {
	LocationID int64     `json:"locationId"`
	Date       time.Time `json:"date"`
	StaffID    *int64    `json:"staffId,omitempty"` // Фильтр по сотруднику (опционально)
}

// GetSlotsRequest запрос на получение слотов за период (административный)
type GetSlotsRequest struct {
	PartnerID  int64     `json:"partnerId"`
	LocationID int64     `json:"locationId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	StaffID    *int64    `json:"staffId,omitempty"` // Фильтр по сотруднику (опционально)
	Status     *string   `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSlotsRequest) ToDomainFilter() (domain.SlotRangeFilter, error) {
	filter := domain.SlotRangeFilter{
		LocationID: r.LocationID,
		StaffID:    r.StaffID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"locationId"`
	StaffID    *int64 `json:"staffId,omitempty"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "10:30"
	Status     string `json:"status"`
	BookingID  *int64 `json:"bookingId,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

// FromDomainSlot конвертирует domain слот в response модель
func FromDomainSlot(slot *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:         slot.ID,
		LocationID: slot.LocationID,
		StaffID:    slot.StaffID,
		Date:       slot.Date.Format(domain.DateFormat),
		StartTime:  slot.StartTime.String(),
		EndTime:    slot.EndTime.String(),
		Status:     string(slot.Status),
		BookingID:  slot.BookingID,
		CreatedAt:  slot.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  slot.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlots конвертирует список domain слотов в response модель
func FromDomainSlots(slots []*domain.TimeSlot) *SlotListResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, FromDomainSlot(slot))
	}
	return &SlotListResponse{
		Slots: result,
		Total: len(result),
	}
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	for _, s := range domain.SlotStatuses {
		if string(s) == status {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
