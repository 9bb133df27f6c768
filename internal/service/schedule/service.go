package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/operatinghours"
	locationClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service сервис для работы с режимом работы локаций
type Service struct {
	hoursRepo      OperatingHoursRepository
	locationClient LocationServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	hoursRepo OperatingHoursRepository,
	locationClient LocationServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:      hoursRepo,
		locationClient: locationClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByLocation возвращает недельное расписание локации
// Дни без записи считаются закрытыми, отдаем только явно заданные
func (s *Service) GetByLocation(ctx context.Context, locationID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetByLocation: fetching schedule for location=%d", locationID)

	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	week, err := s.hoursRepo.FindByLocationID(ctx, locationID)
	if err != nil {
		s.logger.Error("GetByLocation: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: GetByLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByLocation: found %d day records for location=%d", len(week), locationID)
	return models.FromDomainWeek(locationID, week), nil
}

// ReplaceWeek полностью заменяет недельное расписание локации
// Доступно только владельцу локации, замена выполняется в одной транзакции
func (s *Service) ReplaceWeek(ctx context.Context, req *models.UpdateScheduleRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("ReplaceWeek: partner=%d replacing schedule for location=%d, days=%d",
		req.PartnerID, req.LocationID, len(req.Days))

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("ReplaceWeek: validation failed: %v", err)
		return nil, err
	}

	// Проверяем права через LocationService
	location, err := s.locationClient.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationClient.ErrLocationNotFound) {
			s.logger.Warn("ReplaceWeek: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("ReplaceWeek: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: ReplaceWeek - failed to get location: %v", ErrInternal, err)
	}

	if location.PartnerID != req.PartnerID {
		s.logger.Warn("ReplaceWeek: partner=%d does not own location=%d", req.PartnerID, req.LocationID)
		return nil, ErrAccessDenied
	}

	week := req.ToDomainWeek()

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.hoursRepo.ReplaceForLocation(txCtx, req.LocationID, week); err != nil {
			if errors.Is(err, hoursRepo.ErrDuplicateDay) {
				return ErrDuplicateDay
			}
			s.logger.Error("ReplaceWeek: repository error for location=%d: %v", req.LocationID, err)
			return fmt.Errorf("%w: ReplaceWeek - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Перечитываем расписание для актуальных timestamps
	saved, err := s.hoursRepo.FindByLocationID(ctx, req.LocationID)
	if err != nil {
		s.logger.Error("ReplaceWeek: failed to reload schedule for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: ReplaceWeek - failed to reload schedule: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWeek: successfully replaced schedule for location=%d", req.LocationID)
	return models.FromDomainWeek(req.LocationID, saved), nil
}

// validateUpdateRequest проверяет запрос на замену расписания:
// корректность каждого дня и отсутствие дублей дней недели
func validateUpdateRequest(req *models.UpdateScheduleRequest) error {
	if req.PartnerID <= 0 {
		return fmt.Errorf("%w: partnerID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		return fmt.Errorf("%w: days are required", ErrInvalidInput)
	}
	if len(req.Days) > domain.DaysPerWeek {
		return fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, domain.DaysPerWeek)
	}

	seen := make(map[int]bool, len(req.Days))
	for _, day := range req.Days {
		if seen[day.DayOfWeek] {
			return fmt.Errorf("%w: day %d", ErrDuplicateDay, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		record := &domain.OperatingHours{
			LocationID: req.LocationID,
			DayOfWeek:  day.DayOfWeek,
			OpenTime:   types.TimeString(day.OpenTime),
			CloseTime:  types.TimeString(day.CloseTime),
			IsClosed:   day.IsClosed,
		}
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: day %d: %v", ErrInvalidInput, day.DayOfWeek, err)
		}
	}

	return nil
}
