package create_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createSlot "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID локации"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgMissingPartnerID   = "отсутствует ID партнера"
	msgLocationNotFound   = "локация не найдена"
	msgForbidden          = "доступ запрещен"
	msgSlotOverlap        = "слот пересекается с существующим слотом"
	msgInvalidInput       = "некорректные параметры слота"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	partnerID, ok := middleware.GetPartnerID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/slots - Missing partner ID")
		handlers.RespondUnauthorized(w, msgMissingPartnerID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(partnerID, locationID)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSlot.ErrLocationNotFound):
			h.logger.Warn("POST /locations/{id}/slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createSlot.ErrAccessDenied):
			h.logger.Warn("POST /locations/{id}/slots - Access denied: partner_id=%d, location_id=%d",
				partnerID, locationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createSlot.ErrSlotOverlap):
			h.logger.Warn("POST /locations/{id}/slots - Slot overlap: location_id=%d", locationID)
			handlers.RespondError(w, http.StatusConflict, msgSlotOverlap)

		case errors.Is(err, createSlot.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/slots - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/slots - Failed to create slot: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /locations/{id}/slots - Slot created successfully: slot_id=%d, location_id=%d",
		result.ID, locationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
