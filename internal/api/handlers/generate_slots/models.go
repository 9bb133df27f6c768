package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	generateSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate           string `json:"startDate"` // "2025-10-13"
	EndDate             string `json:"endDate"`   // "2025-10-19"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	StaffID             *int64 `json:"staffId,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	LocationID   int64  `json:"locationId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SlotsCreated int64  `json:"slotsCreated"`
	SlotsDeleted int64  `json:"slotsDeleted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(partnerID, locationID int64) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		PartnerID:           partnerID,
		LocationID:          locationID,
		StartDate:           startDate,
		EndDate:             endDate,
		SlotDurationMinutes: r.SlotDurationMinutes,
		StaffID:             r.StaffID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		LocationID:   resp.LocationID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		SlotsCreated: resp.SlotsCreated,
		SlotsDeleted: resp.SlotsDeleted,
	}
}
