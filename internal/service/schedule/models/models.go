package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// DayScheduleInput режим работы на один день недели
type DayScheduleInput struct {
	DayOfWeek int    `json:"dayOfWeek"` // Monday=0 .. Sunday=6
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed,omitempty"`
}

// UpdateScheduleRequest запрос на полную замену недельного расписания локации
type UpdateScheduleRequest struct {
	PartnerID  int64              `json:"partnerId"`
	LocationID int64              `json:"locationId"`
	Days       []DayScheduleInput `json:"days"`
}

// ToDomainWeek конвертирует request в domain записи расписания
func (r *UpdateScheduleRequest) ToDomainWeek() []*domain.OperatingHours {
	week := make([]*domain.OperatingHours, 0, len(r.Days))
	for _, day := range r.Days {
		week = append(week, &domain.OperatingHours{
			LocationID: r.LocationID,
			DayOfWeek:  day.DayOfWeek,
			OpenTime:   types.TimeString(day.OpenTime),
			CloseTime:  types.TimeString(day.CloseTime),
			IsClosed:   day.IsClosed,
		})
	}
	return week
}

// Response модели

// DayScheduleResponse режим работы на один день недели
type DayScheduleResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
	UpdatedAt string `json:"updatedAt"`
}

// WeekScheduleResponse недельное расписание локации
type WeekScheduleResponse struct {
	LocationID int64                  `json:"locationId"`
	Days       []*DayScheduleResponse `json:"days"`
}

// FromDomainWeek конвертирует domain записи в response модель
func FromDomainWeek(locationID int64, week []*domain.OperatingHours) *WeekScheduleResponse {
	days := make([]*DayScheduleResponse, 0, len(week))
	for _, day := range week {
		resp := &DayScheduleResponse{
			DayOfWeek: day.DayOfWeek,
			IsClosed:  day.IsClosed,
			UpdatedAt: day.UpdatedAt.Format(time.RFC3339),
		}
		if !day.IsClosed {
			resp.OpenTime = day.OpenTime.String()
			resp.CloseTime = day.CloseTime.String()
		}
		days = append(days, resp)
	}
	return &WeekScheduleResponse{
		LocationID: locationID,
		Days:       days,
	}
}
