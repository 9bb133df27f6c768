package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/slots"
	"github.com/m04kA/SMC-SchedulingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот недоступен для бронирования"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/internal/slots/{slotId}/book
// Внутренний endpoint, вызывается BookingService при создании брони
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /internal/slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req models.BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /internal/slots/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		h.logger.Warn("PATCH /internal/slots/{id}/book - Invalid booking ID: %d", req.BookingID)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	slot, err := h.service.Book(r.Context(), slotID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /internal/slots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /internal/slots/{id}/book - Slot not available: slot_id=%d, booking_id=%d",
				slotID, req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /internal/slots/{id}/book - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /internal/slots/{id}/book - Failed to book slot: slot_id=%d, booking_id=%d, error=%v",
				slotID, req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /internal/slots/{id}/book - Slot booked successfully: slot_id=%d, booking_id=%d",
		slotID, req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, slot)
}
