package update_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/timeslot"
	locationClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
)

// UseCase use case редактирования существующего слота
type UseCase struct {
	slotRepo       SlotRepository
	locationClient LocationServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	locationClient LocationServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		locationClient: locationClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет редактирование слота
// Забронированные слоты редактировать нельзя: интервал является частью
// подтвержденной брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSlot: partner=%d, slot=%d, date=%s, interval=%s-%s",
		req.PartnerID, req.SlotID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("UpdateSlot: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("UpdateSlot: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Проверяем права через локацию слота
	location, err := uc.locationClient.GetLocation(ctx, slot.LocationID)
	if err != nil {
		if errors.Is(err, locationClient.ErrLocationNotFound) {
			uc.logger.Warn("UpdateSlot: location id=%d not found", slot.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("UpdateSlot: failed to get location id=%d: %v", slot.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	if location.PartnerID != req.PartnerID {
		uc.logger.Warn("UpdateSlot: partner=%d does not own location=%d", req.PartnerID, slot.LocationID)
		return nil, ErrAccessDenied
	}

	// 4. Забронированный слот менять нельзя
	if slot.Status == domain.StatusBooked {
		uc.logger.Warn("UpdateSlot: slot id=%d is booked", req.SlotID)
		return nil, ErrSlotBooked
	}

	// 5. Проверка пересечений и обновление в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.slotRepo.FindOverlapping(
			txCtx, slot.LocationID, req.StaffID, req.Date, req.StartTime, req.EndTime, &req.SlotID,
		)
		if err != nil {
			uc.logger.Error("UpdateSlot: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("UpdateSlot: interval %s-%s overlaps slot id=%d",
				req.StartTime, req.EndTime, overlapping[0].ID)
			return ErrSlotOverlap
		}

		if err := uc.slotRepo.UpdateInterval(txCtx, req.SlotID, req.StaffID, req.Date, req.StartTime, req.EndTime); err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlot) {
				return ErrSlotOverlap
			}
			// Слот могли забронировать или удалить между проверкой статуса
			// и транзакцией — репозиторий классифицирует это по нулю строк
			if errors.Is(err, slotRepo.ErrSlotBooked) {
				uc.logger.Warn("UpdateSlot: slot id=%d booked concurrently", req.SlotID)
				return ErrSlotBooked
			}
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("UpdateSlot: slot id=%d deleted concurrently", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("UpdateSlot: failed to update slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to update slot: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Перечитываем слот для актуальных данных
	updated, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("UpdateSlot: failed to reload slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to reload slot: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateSlot: successfully updated slot id=%d", updated.ID)

	return &Response{
		ID:         updated.ID,
		LocationID: updated.LocationID,
		StaffID:    updated.StaffID,
		Date:       updated.Date,
		StartTime:  updated.StartTime,
		EndTime:    updated.EndTime,
		Status:     string(updated.Status),
		CreatedAt:  updated.CreatedAt,
		UpdatedAt:  updated.UpdatedAt,
	}, nil
}
