package update_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByID получает слот по ID
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	// FindOverlapping находит слоты, пересекающиеся с интервалом
	FindOverlapping(ctx context.Context, locationID int64, staffID *int64, date time.Time, start, end types.TimeString, excludeID *int64) ([]*domain.TimeSlot, error)
	// UpdateInterval обновляет интервал и сотрудника слота
	UpdateInterval(ctx context.Context, id int64, staffID *int64, date time.Time, start, end types.TimeString) error
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
