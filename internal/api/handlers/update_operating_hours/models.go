package update_operating_hours

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// UpdateOperatingHoursRequest HTTP request model
type UpdateOperatingHoursRequest struct {
	Days []DaySchedule `json:"days"`
}

// DaySchedule режим работы на один день недели
type DaySchedule struct {
	DayOfWeek int    `json:"dayOfWeek"` // Monday=0 .. Sunday=6
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateOperatingHoursRequest) ToServiceRequest(partnerID, locationID int64) *models.UpdateScheduleRequest {
	days := make([]models.DayScheduleInput, 0, len(r.Days))
	for _, day := range r.Days {
		days = append(days, models.DayScheduleInput{
			DayOfWeek: day.DayOfWeek,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
			IsClosed:  day.IsClosed,
		})
	}

	return &models.UpdateScheduleRequest{
		PartnerID:  partnerID,
		LocationID: locationID,
		Days:       days,
	}
}
