package update_slot

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	updateSlot "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_slot"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UpdateSlotRequest HTTP request model
type UpdateSlotRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
	StaffID   *int64 `json:"staffId,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"locationId"`
	StaffID    *int64 `json:"staffId,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSlotRequest) ToUseCaseRequest(partnerID, slotID int64) (*updateSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateSlot.Request{
		PartnerID: partnerID,
		SlotID:    slotID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:         resp.ID,
		LocationID: resp.LocationID,
		StaffID:    resp.StaffID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
