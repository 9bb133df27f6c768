package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/timeslot"
	locationClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/slots/models"
)

// Service сервис для работы со слотами расписания
type Service struct {
	slotRepo       SlotRepository
	locationClient LocationServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	locationClient LocationServiceClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:       slotRepo,
		locationClient: locationClient,
		logger:         logger,
	}
}

// Book бронирует слот под бронирование (внутренний API, вызывается BookingService)
// Переход available -> booked выполняется атомарно на уровне БД
func (s *Service) Book(ctx context.Context, slotID int64, bookingID int64) (*models.SlotResponse, error) {
	s.logger.Info("Book: booking slot id=%d for booking=%d", slotID, bookingID)

	if slotID <= 0 || bookingID <= 0 {
		return nil, fmt.Errorf("%w: slotID and bookingID must be positive", ErrInvalidInput)
	}

	if err := s.slotRepo.Book(ctx, slotID, bookingID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Book: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotNotAvailable):
			s.logger.Warn("Book: slot id=%d is not available", slotID)
			return nil, ErrSlotNotAvailable
		default:
			s.logger.Error("Book: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Book - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Book: successfully booked slot id=%d", slotID)
	return s.loadSlot(ctx, "Book", slotID)
}

// Release освобождает забронированный слот (внутренний API)
// Освободить можно только слот в статусе booked
func (s *Service) Release(ctx context.Context, slotID int64) (*models.SlotResponse, error) {
	s.logger.Info("Release: releasing slot id=%d", slotID)

	if slotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if err := s.slotRepo.Release(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Release: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotNotBooked):
			s.logger.Warn("Release: slot id=%d is not booked", slotID)
			return nil, ErrSlotNotBooked
		default:
			s.logger.Error("Release: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Release: successfully released slot id=%d", slotID)
	return s.loadSlot(ctx, "Release", slotID)
}

// Block блокирует слот для перерыва или технических работ
// Доступно только владельцу локации
func (s *Service) Block(ctx context.Context, partnerID, slotID int64) (*models.SlotResponse, error) {
	s.logger.Info("Block: partner=%d blocking slot id=%d", partnerID, slotID)

	if _, err := s.checkSlotAccess(ctx, "Block", partnerID, slotID); err != nil {
		return nil, err
	}

	if err := s.slotRepo.Block(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotBooked):
			s.logger.Warn("Block: slot id=%d is booked", slotID)
			return nil, ErrSlotBooked
		case errors.Is(err, slotRepo.ErrSlotNotAvailable):
			s.logger.Warn("Block: slot id=%d is not available", slotID)
			return nil, ErrSlotNotAvailable
		default:
			s.logger.Error("Block: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Block: successfully blocked slot id=%d", slotID)
	return s.loadSlot(ctx, "Block", slotID)
}

// Unblock снимает блокировку со слота
// Доступно только владельцу локации
func (s *Service) Unblock(ctx context.Context, partnerID, slotID int64) (*models.SlotResponse, error) {
	s.logger.Info("Unblock: partner=%d unblocking slot id=%d", partnerID, slotID)

	if _, err := s.checkSlotAccess(ctx, "Unblock", partnerID, slotID); err != nil {
		return nil, err
	}

	if err := s.slotRepo.Unblock(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotNotBlocked):
			s.logger.Warn("Unblock: slot id=%d is not blocked", slotID)
			return nil, ErrSlotNotBlocked
		default:
			s.logger.Error("Unblock: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Unblock: successfully unblocked slot id=%d", slotID)
	return s.loadSlot(ctx, "Unblock", slotID)
}

// Delete удаляет слот
// Доступно только владельцу локации, забронированный слот удалить нельзя
func (s *Service) Delete(ctx context.Context, partnerID, slotID int64) error {
	s.logger.Info("Delete: partner=%d deleting slot id=%d", partnerID, slotID)

	if _, err := s.checkSlotAccess(ctx, "Delete", partnerID, slotID); err != nil {
		return err
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotBooked):
			s.logger.Warn("Delete: slot id=%d is booked", slotID)
			return ErrSlotBooked
		default:
			s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", slotID)
	return nil
}

// GetAvailableSlots возвращает доступные слоты локации на дату (публичный API)
func (s *Service) GetAvailableSlots(ctx context.Context, req *models.GetAvailableSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("GetAvailableSlots: location=%d, date=%s", req.LocationID, req.Date.Format(domain.DateFormat))

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	status := domain.StatusAvailable
	slots, err := s.slotRepo.GetByRange(ctx, domain.SlotRangeFilter{
		LocationID: req.LocationID,
		StaffID:    req.StaffID,
		StartDate:  req.Date,
		EndDate:    req.Date,
		Status:     &status,
	})
	if err != nil {
		s.logger.Error("GetAvailableSlots: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAvailableSlots: found %d slots for location=%d", len(slots), req.LocationID)
	return models.FromDomainSlots(slots), nil
}

// GetSlotsByDateRange возвращает слоты локации за период (административный API)
// Доступно только владельцу локации
func (s *Service) GetSlotsByDateRange(ctx context.Context, req *models.GetSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("GetSlotsByDateRange: partner=%d, location=%d, range=%s..%s",
		req.PartnerID, req.LocationID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateSlotsRequest(req); err != nil {
		s.logger.Warn("GetSlotsByDateRange: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkLocationAccess(ctx, "GetSlotsByDateRange", req.PartnerID, req.LocationID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSlotsByDateRange: invalid status=%v", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	slots, err := s.slotRepo.GetByRange(ctx, filter)
	if err != nil {
		s.logger.Error("GetSlotsByDateRange: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetSlotsByDateRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSlotsByDateRange: found %d slots for location=%d", len(slots), req.LocationID)
	return models.FromDomainSlots(slots), nil
}

// checkSlotAccess проверяет, что партнер владеет локацией слота
func (s *Service) checkSlotAccess(ctx context.Context, op string, partnerID, slotID int64) (*domain.TimeSlot, error) {
	if partnerID <= 0 || slotID <= 0 {
		return nil, fmt.Errorf("%w: partnerID and slotID must be positive", ErrInvalidInput)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("%s: slot id=%d not found", op, slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("%s: repository error for slot id=%d: %v", op, slotID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.checkLocationAccess(ctx, op, partnerID, slot.LocationID); err != nil {
		return nil, err
	}

	return slot, nil
}

// checkLocationAccess проверяет права партнера на локацию через LocationService
func (s *Service) checkLocationAccess(ctx context.Context, op string, partnerID, locationID int64) error {
	location, err := s.locationClient.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, locationClient.ErrLocationNotFound) {
			s.logger.Warn("%s: location id=%d not found", op, locationID)
			return ErrLocationNotFound
		}
		s.logger.Error("%s: failed to get location id=%d: %v", op, locationID, err)
		return fmt.Errorf("%w: %s - failed to get location: %v", ErrInternal, op, err)
	}

	if location.PartnerID != partnerID {
		s.logger.Warn("%s: partner=%d does not own location=%d", op, partnerID, locationID)
		return ErrAccessDenied
	}

	return nil
}

// loadSlot перечитывает слот после изменения статуса для актуального ответа
func (s *Service) loadSlot(ctx context.Context, op string, slotID int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		s.logger.Error("%s: failed to reload slot id=%d: %v", op, slotID, err)
		return nil, fmt.Errorf("%w: %s - failed to reload slot: %v", ErrInternal, op, err)
	}
	return models.FromDomainSlot(slot), nil
}

func validateSlotsRequest(req *models.GetSlotsRequest) error {
	if req.PartnerID <= 0 {
		return fmt.Errorf("%w: partnerID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if req.EndDate.Sub(req.StartDate) > time.Duration(domain.MaxGenerationRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: date range is too large", ErrInvalidInput)
	}
	return nil
}
