package schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
)

// OperatingHoursRepository интерфейс репозитория режима работы
type OperatingHoursRepository interface {
	FindByLocationID(ctx context.Context, locationID int64) ([]*domain.OperatingHours, error)
	ReplaceForLocation(ctx context.Context, locationID int64, week []*domain.OperatingHours) error
}

// LocationServiceClient интерфейс клиента для LocationService
type LocationServiceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*locationservice.Location, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
