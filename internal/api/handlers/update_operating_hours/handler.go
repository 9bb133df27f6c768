package update_operating_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID локации"
	msgMissingPartnerID   = "отсутствует ID партнера"
	msgLocationNotFound   = "локация не найдена"
	msgForbidden          = "доступ запрещен"
	msgDuplicateDay       = "день недели указан более одного раза"
	msgInvalidInput       = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/locations/{locationId}/operating-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /locations/{id}/operating-hours - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	partnerID, ok := middleware.GetPartnerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /locations/{id}/operating-hours - Missing partner ID")
		handlers.RespondUnauthorized(w, msgMissingPartnerID)
		return
	}

	var req UpdateOperatingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/{id}/operating-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceWeek(r.Context(), req.ToServiceRequest(partnerID, locationID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrLocationNotFound):
			h.logger.Warn("PUT /locations/{id}/operating-hours - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /locations/{id}/operating-hours - Access denied: partner_id=%d, location_id=%d",
				partnerID, locationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrDuplicateDay):
			h.logger.Warn("PUT /locations/{id}/operating-hours - Duplicate day: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgDuplicateDay)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /locations/{id}/operating-hours - Invalid input: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /locations/{id}/operating-hours - Failed to replace schedule: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locations/{id}/operating-hours - Schedule replaced successfully: location_id=%d, days=%d",
		locationID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
