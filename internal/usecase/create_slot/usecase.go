package create_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/timeslot"
	locationClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
)

// UseCase use case ручного создания слота вне массовой генерации
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

// Execute выполняет создание слота
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции; уникальный индекс БД остается последней линией защиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: partner=%d, location=%d, date=%s, interval=%s-%s",
		req.PartnerID, req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем локацию и проверяем права
	location, err := uc.locationClient.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationClient.ErrLocationNotFound) {
			uc.logger.Warn("CreateSlot: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateSlot: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	if location.PartnerID != req.PartnerID {
		uc.logger.Warn("CreateSlot: partner=%d does not own location=%d", req.PartnerID, req.LocationID)
		return nil, ErrAccessDenied
	}

	var created *domain.TimeSlot

	// 3. Проверка пересечений и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.slotRepo.FindOverlapping(
			txCtx, req.LocationID, req.StaffID, req.Date, req.StartTime, req.EndTime, nil,
		)
		if err != nil {
			uc.logger.Error("CreateSlot: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateSlot: interval %s-%s overlaps slot id=%d",
				req.StartTime, req.EndTime, overlapping[0].ID)
			return ErrSlotOverlap
		}

		slot, err := domain.NewTimeSlot(req.LocationID, req.StaffID, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		created, err = uc.slotRepo.Create(txCtx, slot)
		if err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlot) {
				return ErrSlotOverlap
			}
			uc.logger.Error("CreateSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)

	return &Response{
		ID:         created.ID,
		LocationID: created.LocationID,
		StaffID:    created.StaffID,
		Date:       created.Date,
		StartTime:  created.StartTime,
		EndTime:    created.EndTime,
		Status:     string(created.Status),
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}
