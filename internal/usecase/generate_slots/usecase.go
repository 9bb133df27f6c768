package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	locationClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case генерации слотов по расписанию работы локации
type UseCase struct {
	slotRepo       SlotRepository
	hoursRepo      OperatingHoursRepository
	locationClient LocationServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	hoursRepo OperatingHoursRepository,
	locationClient LocationServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		hoursRepo:      hoursRepo,
		locationClient: locationClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет генерацию слотов для локации в диапазоне дат
//
// Политика замены: все незабронированные слоты локации (и сотрудника,
// если указан) в диапазоне удаляются и заменяются новыми кандидатами.
// Забронированные слоты не удаляются и не изменяются; кандидаты,
// пересекающиеся с ними, отбрасываются. Удаление и вставка выполняются
// в одной сериализуемой транзакции: конкурирующее бронирование либо
// дождется её завершения, либо корректно упадет на несуществующей строке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: partner=%d, location=%d, range=%s..%s, duration=%d",
		req.PartnerID, req.LocationID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.SlotDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем локацию и проверяем права
	location, err := uc.locationClient.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationClient.ErrLocationNotFound) {
			uc.logger.Warn("GenerateSlots: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	if location.PartnerID != req.PartnerID {
		uc.logger.Warn("GenerateSlots: partner=%d does not own location=%d", req.PartnerID, req.LocationID)
		return nil, ErrAccessDenied
	}

	// 3. Читаем недельное расписание локации
	week, err := uc.hoursRepo.FindByLocationID(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get operating hours for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	// 4. Генерируем кандидатов (чистый алгоритм, без обращений к БД)
	candidates, err := generateCandidates(
		req.LocationID,
		req.StaffID,
		req.StartDate,
		req.EndDate,
		req.SlotDurationMinutes,
		week,
	)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	var created, deleted int64

	// 5. Замена слотов в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Удаляем незабронированные слоты диапазона
		deleted, err = uc.slotRepo.DeleteUnbookedInRange(txCtx, req.LocationID, req.StaffID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to delete unbooked slots: %v", err)
			return fmt.Errorf("%w: failed to delete unbooked slots: %w", ErrInternal, err)
		}

		// 5.2. Читаем выжившие забронированные слоты диапазона
		booked, err := uc.slotRepo.GetByRange(txCtx, domain.SlotRangeFilter{
			LocationID: req.LocationID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Status:     ptr.Ptr(domain.StatusBooked),
		})
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to get booked slots: %v", err)
			return fmt.Errorf("%w: failed to get booked slots: %w", ErrInternal, err)
		}

		// 5.3. Отбрасываем кандидатов, пересекающихся с забронированными
		toInsert := filterAgainstBooked(candidates, booked)

		// 5.4. Вставляем новых кандидатов
		created, err = uc.slotRepo.CreateBatch(txCtx, toInsert)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to insert slots: %v", err)
			return fmt.Errorf("%w: failed to insert slots: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: location=%d, created=%d, deleted=%d", req.LocationID, created, deleted)

	return &Response{
		LocationID:   req.LocationID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		SlotsCreated: created,
		SlotsDeleted: deleted,
	}, nil
}
