package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// DeleteUnbookedInRange удаляет незабронированные слоты в диапазоне дат
	DeleteUnbookedInRange(ctx context.Context, locationID int64, staffID *int64, startDate, endDate time.Time) (int64, error)
	// GetByRange получает слоты по фильтру
	GetByRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error)
	// CreateBatch массово создает слоты
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) (int64, error)
}

// OperatingHoursRepository интерфейс репозитория расписания работы
type OperatingHoursRepository interface {
	FindByLocationID(ctx context.Context, locationID int64) ([]*domain.OperatingHours, error)
}

// LocationServiceClient интерфейс клиента для LocationService
type LocationServiceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*locationservice.Location, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// slotInterval полуоткрытый интервал [Start, End) внутри одного дня
type slotInterval struct {
	Start types.TimeString
	End   types.TimeString
}
